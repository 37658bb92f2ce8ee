package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with args and returns command output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.SetOutput(&out)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// writeConfig writes a config and a one-section content dir into a temp
// directory and returns the config path.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	contentDir := filepath.Join(dir, "content")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		t.Fatal(err)
	}
	section := `slug = "go"
title = "Go Patterns"
summary = "Small Go idioms."

[[examples]]
id = "errgroup"
title = "Errgroup"
language = "go"
code = "g.Go(func() error { return nil })"
`
	if err := os.WriteFile(filepath.Join(contentDir, "go.toml"), []byte(section), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := "[content]\ndir = " + quote(contentDir) + "\n\n[cache]\nbackend = \"none\"\n" + extra
	path := filepath.Join(dir, "cheatsheet.toml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quote(s string) string {
	return "'" + s + "'"
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := []string{"build", "list", "show", "browse", "sitemap", "text", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(out, "cheatsheet ") {
		t.Errorf("version output = %q", out)
	}
}

func TestTextCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"text", "title", "john", "doe"}, "John Doe\n"},
		{[]string{"text", "kebab", "Hello World"}, "hello-world\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestTextCommandRequiresInput(t *testing.T) {
	if _, err := run(t, "text", "title"); err == nil {
		t.Error("expected error without input")
	}
}

func TestListBuiltin(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"/examples/react", "/examples/js-patterns", "workspace-utils", "21 examples"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestListUnknownSection(t *testing.T) {
	if _, err := run(t, "list", "--section", "nope"); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestShowRaw(t *testing.T) {
	out, err := run(t, "show", "next", "workspace-utils", "--raw")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "# Workspace Utils Example") {
		t.Errorf("show output = %q", out)
	}
}

func TestShowSection(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := run(t, "-c", cfg, "show", "go", "--raw")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Go Patterns", "## Errgroup", "```go"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestShowUnknownExample(t *testing.T) {
	if _, err := run(t, "show", "react", "nope"); err == nil {
		t.Error("expected error for unknown example")
	}
}

func TestBuildCommand(t *testing.T) {
	cfg := writeConfig(t, "")
	outDir := filepath.Join(t.TempDir(), "public")

	out, err := run(t, "-c", cfg, "build", "-o", outDir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "3 pages") {
		t.Errorf("build output = %q", out)
	}
	for _, f := range []string{"index.html", "404.html", "examples/go/index.html", "assets/style.css", "manifest.json"} {
		if _, err := os.Stat(filepath.Join(outDir, f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
}

func TestBuildBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[site]\ntitel = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "-c", path, "build", "-o", t.TempDir()); err == nil {
		t.Error("expected error for unknown config key")
	}
}

func TestSitemapDOT(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := run(t, "-c", cfg, "sitemap")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "digraph sitemap {") {
		t.Errorf("sitemap output = %q", out)
	}
	if !strings.Contains(out, `"/" -> "/examples/go"`) {
		t.Errorf("sitemap missing home edge:\n%s", out)
	}
}

func TestSitemapBadFormat(t *testing.T) {
	if _, err := run(t, "sitemap", "-f", "png"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestBuildWatchBuiltinIgnored(t *testing.T) {
	out, err := run(t, "build", "--no-cache", "--watch", "-o", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "--watch ignored") {
		t.Errorf("output = %q", out)
	}
}

func TestCompleteShowArgs(t *testing.T) {
	path := writeConfig(t, "")

	out, err := run(t, "__complete", "--config", path, "show", "")
	if err != nil {
		t.Fatalf("complete sections error: %v", err)
	}
	if !strings.Contains(out, "go\tGo Patterns") {
		t.Errorf("section completions = %q, want go\\tGo Patterns", out)
	}

	out, err = run(t, "__complete", "--config", path, "show", "go", "err")
	if err != nil {
		t.Fatalf("complete examples error: %v", err)
	}
	if !strings.Contains(out, "errgroup\tErrgroup") {
		t.Errorf("example completions = %q, want errgroup\\tErrgroup", out)
	}

	out, _ = run(t, "__complete", "--config", path, "show", "go", "zz")
	if strings.Contains(out, "errgroup") {
		t.Errorf("completions for unmatched prefix = %q, want none", out)
	}
}

func TestCompleteListSectionFlag(t *testing.T) {
	out, err := run(t, "__complete", "list", "--section", "j")
	if err != nil {
		t.Fatalf("complete --section error: %v", err)
	}
	if !strings.Contains(out, "js-patterns") || strings.Contains(out, "react") {
		t.Errorf("--section completions = %q, want only js-patterns", out)
	}
}
