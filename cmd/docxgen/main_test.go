package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const manifestYAML = `
footer:
  - page_number: {align: center}
body:
  - paragraph:
      text: Hello
  - table:
      rows:
        - cells: [{text: a}, {text: b}]
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	manifestPath := writeManifest(t, manifestYAML)
	invalidPath := writeManifest(t, "body:\n  - {}\n")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no args", nil, 1, "", "Usage: docxgen"},
		{"version", []string{"version"}, 0, "go-docxgen version 0.1.0", ""},
		{"unknown command", []string{"render"}, 1, "", "Unknown command: render"},
		{"xml document", []string{"xml", manifestPath}, 0, `<w:t xml:space="preserve">Hello</w:t>`, ""},
		{"xml footer", []string{"xml", manifestPath, "footer"}, 0, `<w:instrText>PAGE</w:instrText>`, ""},
		{"xml missing header", []string{"xml", manifestPath, "header"}, 1, "", "manifest has no header"},
		{"xml unknown part", []string{"xml", manifestPath, "styles"}, 1, "", "Unknown part: styles"},
		{"preview", []string{"preview", manifestPath}, 0, "== body ==\nHello\n+---+---+\n| a | b |", ""},
		{"invalid manifest", []string{"preview", invalidPath}, 1, "", "validation error: body[0]"},
		{"missing manifest", []string{"preview", filepath.Join(t.TempDir(), "nope.yaml")}, 1, "", "manifest: read"},
		{"build usage", []string{"build", manifestPath}, 1, "", "Usage: docxgen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != tt.wantCode {
				t.Errorf("run() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunBuild(t *testing.T) {
	manifestPath := writeManifest(t, manifestYAML)
	dir := t.TempDir()
	out := filepath.Join(dir, "out.docx")
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("log_level: error\ncompress: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"build", manifestPath, out, configPath}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("zip.OpenReader() error = %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
		if f.Method != zip.Store {
			t.Errorf("%s method = %d, want store", f.Name, f.Method)
		}
	}
	for _, want := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/_rels/document.xml.rels", "word/footer1.xml"} {
		if !names[want] {
			t.Errorf("container is missing %s", want)
		}
	}
	if names["word/header1.xml"] {
		t.Error("container has a header part without a header")
	}
}
