// Copyright 2021, 2025 Tamás Gulácsi. All rights reserved.

// Command tcoexport writes TCO comparison tables into one workbook (xlsx or ods),
// a printable PDF or a HTML page, highlighting the TOTAL rows and the
// lowest-priced vendors.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/tco"
	"github.com/UNO-SOFT/tco/ods"
	"github.com/UNO-SOFT/tco/pdf"
	"github.com/UNO-SOFT/tco/view"
	"github.com/UNO-SOFT/tco/xlsx"
	"github.com/UNO-SOFT/zlog/v2"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/peterbourgon/ff/v3/ffyaml"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

// EnvPrefix is the prefix of the environment variables overriding the flags.
const EnvPrefix = "TCO"

func Main() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	slog.SetDefault(logger)

	args := fixArgs(os.Args[1:])
	logger.Debug("args", "original", os.Args[1:], "fixed", args)
	app := newApp()
	if err := app.Parse(args); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

// fixArgs splits "-f8" into "-f", "8".
func fixArgs(args []string) []string {
	fixed := make([]string, 0, len(args))
	for _, a := range args {
		if strings.HasPrefix(a, "-f") && len(a) > 2 && '0' <= a[2] && a[2] <= '9' {
			fixed = append(fixed, "-f", a[2:])
		} else {
			fixed = append(fixed, a)
		}
	}
	return fixed
}

func newApp() *ffcli.Command {
	// shared by every command, so the subcommands read the same config file
	var configFile string
	configOptions := []ff.Option{
		ff.WithEnvVarPrefix(EnvPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parser),
		ff.WithAllowMissingConfigFile(true),
		ff.WithIgnoreUndefined(true),
	}
	newCmd := func(name, ext string, export exportFunc) *ffcli.Command {
		cmd := newExportCmd(name, ext, export)
		cmd.FlagSet.StringVar(&configFile, "config", "", "YAML config file")
		cmd.Options = configOptions
		return cmd
	}

	fs := flag.NewFlagSet("tcoexport", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	fs.StringVar(&configFile, "config", "", "YAML config file")

	xlsxCmd := newCmd("xlsx", ".xlsx", func(selected []string, sources map[string]tco.Source) (io.Reader, error) {
		return xlsx.ExportBytes(selected, sources)
	})
	odsCmd := newCmd("ods", ".ods", func(selected []string, sources map[string]tco.Source) (io.Reader, error) {
		return ods.ExportBytes(selected, sources)
	})
	htmlCmd := newCmd("html", ".html", func(selected []string, sources map[string]tco.Source) (io.Reader, error) {
		var buf bytes.Buffer
		if err := view.WritePage(&buf, "TCO comparison", selected, sources); err != nil {
			return nil, err
		}
		return &buf, nil
	})

	var pdfOpts pdf.Options
	pdfCmd := newCmd("pdf", ".pdf", func(selected []string, sources map[string]tco.Source) (io.Reader, error) {
		b, err := pdf.Render(selected, sources, pdfOpts)
		return bytes.NewReader(b), err
	})
	headerColor := pdf.Color{}
	headerColor.Red, headerColor.Green, headerColor.Blue = 230, 230, 230
	pdfCmd.FlagSet.Var(&headerColor, "header-color", "header background color")
	pdfCmd.FlagSet.BoolVar(&pdfOpts.Landscape, "L", false, "landscape orientation (default: portrait)")
	pdfCmd.FlagSet.Float64Var(&pdfOpts.FontSize, "f", 8, "font size")
	pdfOpts.HeaderColor = &headerColor

	return &ffcli.Command{Name: "tcoexport", FlagSet: fs,
		ShortUsage: "tcoexport [-v] [-config f.yaml] <xlsx|ods|pdf|html> [flags] [name:file.csv[:category] ...]",
		Options:    configOptions,
		Exec: func(ctx context.Context, args []string) error {
			fs.Usage()
			return nil
		},
		Subcommands: []*ffcli.Command{xlsxCmd, odsCmd, pdfCmd, htmlCmd},
	}
}

type exportFunc func(selected []string, sources map[string]tco.Source) (io.Reader, error)

func newExportCmd(name, ext string, export exportFunc) *ffcli.Command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var sf sourceFlags
	sf.Register(fs)
	return &ffcli.Command{Name: name, FlagSet: fs,
		ShortUsage: "tcoexport " + name + " [flags] [name:file.csv[:category] ...]",
		ShortHelp:  "write the selected sheets as " + strings.TrimPrefix(ext, "."),
		Exec: func(ctx context.Context, args []string) error {
			in, err := sf.Load(args)
			if err != nil {
				return err
			}
			if len(in.Selected) == 0 {
				logger.Warn("no sheets selected, nothing to write")
				return nil
			}
			out := sf.Out
			if out == "" {
				out = in.DefaultOut
				if out == "" {
					out = "tco" + ext
				}
				out = strings.TrimSuffix(out, filepath.Ext(out)) + ext
			}
			logger.Info("export", "format", name, "sheets", in.Selected, "out", out)
			r, err := export(in.Selected, in.Sources)
			if err != nil {
				return err
			}
			return writeOut(out, r)
		},
	}
}

// writeOut writes r into the named file, or to stdout if fn is "-".
func writeOut(fn string, r io.Reader) error {
	if fn == "-" {
		_, err := io.Copy(os.Stdout, r)
		return err
	}
	fh, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer fh.Close()
	if _, err = io.Copy(fh, r); err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	return fh.Close()
}
