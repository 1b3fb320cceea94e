package main

import (
	"fmt"
	"io"
	"os"

	"github.com/benjaminschreck/go-docxgen/internal/manifest"
	"github.com/benjaminschreck/go-docxgen/internal/preview"
	"github.com/benjaminschreck/go-docxgen/pkg/docx"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "go-docxgen - WordprocessingML generator")
	fmt.Fprintln(w, "\nUsage: docxgen <command> [arguments]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  build <manifest> <output> [config]   Write a .docx built from a YAML manifest")
	fmt.Fprintln(w, "  xml <manifest> [part]                Print one part (document, header, footer, content-types, rels)")
	fmt.Fprintln(w, "  preview <manifest>                   Print a plain text preview")
	fmt.Fprintln(w, "  version                              Show version information")
}

var partNames = map[string]string{
	"document":      docx.PartDocument,
	"header":        docx.PartHeader,
	"footer":        docx.PartFooter,
	"content-types": docx.PartContentTypes,
	"rels":          docx.PartRootRels,
	"document-rels": docx.PartDocumentRels,
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 1
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "go-docxgen version %s\n", version)
		return 0

	case "build":
		if len(args) < 3 || len(args) > 4 {
			usage(stderr)
			return 1
		}
		d, err := load(args[1])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if len(args) == 4 {
			config, err := docx.LoadConfigFile(args[3])
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			docx.SetGlobalConfig(config)
			d = d.WithConfig(config)
		}
		if err := d.Save(args[2]); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", args[2])
		return 0

	case "xml":
		if len(args) < 2 || len(args) > 3 {
			usage(stderr)
			return 1
		}
		d, err := load(args[1])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		part := "document"
		if len(args) == 3 {
			part = args[2]
		}
		name, ok := partNames[part]
		if !ok {
			fmt.Fprintf(stderr, "Unknown part: %s\n", part)
			return 1
		}
		data, ok := d.Build().Part(name)
		if !ok {
			fmt.Fprintf(stderr, "manifest has no %s\n", part)
			return 1
		}
		stdout.Write(data)
		fmt.Fprintln(stdout)
		return 0

	case "preview":
		if len(args) != 2 {
			usage(stderr)
			return 1
		}
		d, err := load(args[1])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, preview.Docx(d))
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		usage(stderr)
		return 1
	}
}

func load(path string) (docx.Docx, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return docx.Docx{}, err
	}
	d, err := m.Docx()
	if err != nil {
		return docx.Docx{}, fmt.Errorf("%s: %w", path, err)
	}
	docx.WithField("manifest", path).Debug("loaded manifest")
	return d, nil
}
