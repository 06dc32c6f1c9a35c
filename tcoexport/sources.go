// Copyright 2025 Tamás Gulácsi. All rights reserved.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/UNO-SOFT/tco"
	"gopkg.in/yaml.v3"
)

type sourceFlags struct {
	Out      string
	Manifest string
	Demo     string
	Sheets   string
	Charset  string
}

func (sf *sourceFlags) Register(fs *flag.FlagSet) {
	fs.StringVar(&sf.Out, "o", "", `output file name ("-" is stdout)`)
	fs.StringVar(&sf.Manifest, "manifest", "", "YAML manifest of the sheets")
	fs.StringVar(&sf.Demo, "demo", "", "use the demo tables: original or transposed")
	fs.StringVar(&sf.Sheets, "sheets", "", "comma separated list of the sheets to write (default: all)")
	fs.StringVar(&sf.Charset, "charset", tco.EncName, "csv charset name")
}

// Manifest lists the sheets of a workbook.
type Manifest struct {
	Sheets []ManifestSheet `yaml:"sheets"`
}

type ManifestSheet struct {
	Name     string       `yaml:"name"`
	File     string       `yaml:"file"`
	Category tco.Category `yaml:"category"`
	Charset  string       `yaml:"charset"`
}

// ReadManifest reads the YAML manifest, resolving the file names
// relative to the manifest's directory.
func ReadManifest(fn string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(fn)
	if err != nil {
		return m, err
	}
	if err = yaml.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("%s: %w", fn, err)
	}
	dir := filepath.Dir(fn)
	for i, s := range m.Sheets {
		if s.File == "" {
			return m, fmt.Errorf("%s: sheet %d (%q) has no file", fn, i+1, s.Name)
		}
		if !filepath.IsAbs(s.File) && s.File != "-" {
			m.Sheets[i].File = filepath.Join(dir, s.File)
		}
		if s.Name == "" {
			m.Sheets[i].Name = sheetName(s.File)
		}
	}
	return m, nil
}

type input struct {
	Sources    map[string]tco.Source
	Order      []string
	Selected   []string
	DefaultOut string
}

func (in *input) add(name string, src tco.Source) error {
	if _, ok := in.Sources[name]; ok {
		return fmt.Errorf("%q: %w", name, tco.ErrDuplicateSheet)
	}
	in.Sources[name] = src
	in.Order = append(in.Order, name)
	return nil
}

// Load collects the demo, manifest and argument sources, in this order,
// and the selection.
func (sf *sourceFlags) Load(args []string) (input, error) {
	in := input{Sources: make(map[string]tco.Source)}
	switch sf.Demo {
	case "":
	case "original", "transposed":
		transposed := sf.Demo == "transposed"
		demo := tco.DemoSources(transposed)
		for _, name := range tco.DemoSheets(transposed) {
			if err := in.add(name, demo[name]); err != nil {
				return in, err
			}
		}
		in.DefaultOut = tco.DemoFileName(transposed)
	default:
		return in, fmt.Errorf("unknown demo %q (want original or transposed)", sf.Demo)
	}

	if sf.Manifest != "" {
		m, err := ReadManifest(sf.Manifest)
		if err != nil {
			return in, err
		}
		for _, s := range m.Sheets {
			charset := s.Charset
			if charset == "" {
				charset = sf.Charset
			}
			t, err := tco.ReadCsvTable(s.File, charset)
			if err != nil {
				return in, err
			}
			if err = in.add(s.Name, tco.Source{Table: t, Category: s.Category}); err != nil {
				return in, err
			}
		}
		if in.DefaultOut == "" {
			in.DefaultOut = sf.Manifest
		}
	}

	for _, arg := range args {
		name, fn, cat, err := parseArg(arg)
		if err != nil {
			return in, err
		}
		t, err := tco.ReadCsvTable(fn, sf.Charset)
		if err != nil {
			return in, err
		}
		if err = in.add(name, tco.Source{Table: t, Category: cat}); err != nil {
			return in, err
		}
		if in.DefaultOut == "" && fn != "-" {
			in.DefaultOut = fn
		}
	}

	in.Selected = in.Order
	if sf.Sheets != "" {
		in.Selected = nil
		for _, s := range strings.Split(sf.Sheets, ",") {
			if s = strings.TrimSpace(s); s != "" {
				in.Selected = append(in.Selected, s)
			}
		}
	}
	return in, nil
}

// parseArg parses a [name:]file.csv[:category] argument.
func parseArg(arg string) (name, fn string, cat tco.Category, err error) {
	parts := strings.Split(arg, ":")
	switch len(parts) {
	case 1:
		fn = parts[0]
	case 2:
		name, fn = parts[0], parts[1]
	case 3:
		name, fn = parts[0], parts[1]
		if cat, err = tco.ParseCategory(parts[2]); err != nil {
			return "", "", cat, fmt.Errorf("%q: %w", arg, err)
		}
	default:
		return "", "", cat, fmt.Errorf("%q: want [name:]file.csv[:category]", arg)
	}
	if name == "" {
		name = sheetName(fn)
	}
	return name, fn, cat, nil
}

func sheetName(fn string) string {
	if fn == "" || fn == "-" {
		return "Sheet1"
	}
	return strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
}
