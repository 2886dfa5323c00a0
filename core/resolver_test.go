package core

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolve_FallbackWhenFileMissing(t *testing.T) {
	cfg := &Config{TemplateDir: t.TempDir()}
	resolver := NewResolver(cfg)

	page, err := resolver.Resolve("index.html", "<html>fallback</html>")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if page.FromFile {
		t.Error("expected FromFile to be false for missing override")
	}
	if string(page.Body) != "<html>fallback</html>" {
		t.Errorf("expected fallback body, got %q", page.Body)
	}
}

func TestResolve_FileContentsWhenPresent(t *testing.T) {
	dir := t.TempDir()
	content := "<html><body><p>custom override &amp; more</p></body></html>"
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{TemplateDir: dir}
	resolver := NewResolver(cfg)

	page, err := resolver.Resolve("index.html", "<html>fallback</html>")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !page.FromFile {
		t.Error("expected FromFile to be true")
	}
	if !bytes.Equal(page.Body, []byte(content)) {
		t.Errorf("expected exact file contents, got %q", page.Body)
	}
}

func TestResolve_ErrorWhenPathUnreadable(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "index.html"), 0755); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{TemplateDir: dir}
	resolver := NewResolver(cfg)

	_, err := resolver.Resolve("index.html", "<html>fallback</html>")
	if err == nil {
		t.Fatal("expected error when the template path cannot be read")
	}
}

func TestResolve_RendersTemplateWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	content := `<p>{{ upper "hi" }}</p>`
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{TemplateDir: dir, Render: true}
	resolver := NewResolver(cfg)

	page, err := resolver.Resolve("index.html", "fallback")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if string(page.Body) != "<p>HI</p>" {
		t.Errorf("expected rendered template, got %q", page.Body)
	}
}

func TestResolve_RenderErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	content := `<p>{{ if }}</p>`
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{TemplateDir: dir, Render: true}
	resolver := NewResolver(cfg)

	_, err := resolver.Resolve("index.html", "fallback")
	if err == nil {
		t.Fatal("expected parse error for broken template")
	}
}

func TestResolve_RenderSkipsFallback(t *testing.T) {
	cfg := &Config{TemplateDir: t.TempDir(), Render: true}
	resolver := NewResolver(cfg)

	fallback := `<p>{{ not a template }}</p>`
	page, err := resolver.Resolve("index.html", fallback)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if string(page.Body) != fallback {
		t.Errorf("expected fallback to be served verbatim, got %q", page.Body)
	}
}

func TestResolve_MinifiesWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	content := "<html>\n  <body>\n    <h1>Hi</h1>\n  </body>\n</html>\n"
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{TemplateDir: dir, Minify: true}
	resolver := NewResolver(cfg)

	page, err := resolver.Resolve("index.html", "fallback")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(page.Body) >= len(content) {
		t.Errorf("expected minified body to be smaller, got %d >= %d", len(page.Body), len(content))
	}
	if !strings.Contains(string(page.Body), "<h1>Hi</h1>") {
		t.Errorf("expected content to survive minification, got %q", page.Body)
	}
	if strings.Contains(string(page.Body), "\n") {
		t.Errorf("expected newlines to be stripped, got %q", page.Body)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	dir := t.TempDir()
	content := "<html><body>stable</body></html>"
	if err := os.WriteFile(filepath.Join(dir, "waiting.html"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{TemplateDir: dir}
	resolver := NewResolver(cfg)

	first, err := resolver.Resolve("waiting.html", "fallback")
	if err != nil {
		t.Fatal(err)
	}
	second, err := resolver.Resolve("waiting.html", "fallback")
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first.Body, second.Body) {
		t.Error("expected identical bodies for unchanged filesystem state")
	}
}

func TestTemplateFuncs_SafeHTMLAndProps(t *testing.T) {
	dir := t.TempDir()
	content := `{{ $p := props "title" "<b>Hi</b>" }}<div>{{ safeHTML (index $p "title") }}</div>`
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{TemplateDir: dir, Render: true}
	resolver := NewResolver(cfg)

	page, err := resolver.Resolve("index.html", "fallback")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if string(page.Body) != "<div><b>Hi</b></div>" {
		t.Errorf("expected unescaped markup via safeHTML, got %q", page.Body)
	}
}
