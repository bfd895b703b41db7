package load

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoader_PlainText(t *testing.T) {
	loader := NewLoader()

	for _, name := range []string{"notes.txt", "notes.md", "notes.text"} {
		path := writeTemp(t, name, "We decided to ship on Friday.")
		text, err := loader.Load(path)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", name, err)
		}
		if text != "We decided to ship on Friday." {
			t.Errorf("Load(%s): unexpected text %q", name, text)
		}
	}
}

func TestLoader_UnsupportedExtension(t *testing.T) {
	loader := NewLoader()

	path := writeTemp(t, "notes.pdf", "irrelevant")
	_, err := loader.Load(path)
	if err == nil {
		t.Fatal("expected error for .pdf")
	}
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("expected ErrUnsupportedFileType, got %v", err)
	}
	// The message lists what IS supported
	if !strings.Contains(err.Error(), ".txt") {
		t.Errorf("error should list supported extensions: %v", err)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader()

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrUnreadableFile) {
		t.Errorf("expected ErrUnreadableFile, got %v", err)
	}
}

func TestLoader_Supported(t *testing.T) {
	loader := NewLoader()

	cases := map[string]bool{
		"minutes.txt":  true,
		"minutes.TXT":  true,
		"minutes.md":   true,
		"minutes.html": true,
		"minutes.docx": true,
		"minutes.pdf":  false,
		"minutes":      false,
	}
	for path, want := range cases {
		if got := loader.Supported(path); got != want {
			t.Errorf("Supported(%q): expected %v, got %v", path, want, got)
		}
	}
}

func TestLoader_Extensions(t *testing.T) {
	exts := NewLoader().Extensions()

	want := map[string]bool{".txt": true, ".md": true, ".html": true, ".docx": true}
	found := make(map[string]bool)
	for _, ext := range exts {
		found[ext] = true
	}
	for ext := range want {
		if !found[ext] {
			t.Errorf("extension %s not registered", ext)
		}
	}
}

func TestNormalize_BOMAndCRLF(t *testing.T) {
	loader := NewLoader()

	path := writeTemp(t, "notes.txt", "\ufeffFirst line.\r\nSecond line.\r\n")
	text, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if strings.HasPrefix(text, "\ufeff") {
		t.Error("BOM not stripped")
	}
	if strings.Contains(text, "\r") {
		t.Error("CRLF not normalized")
	}
	if text != "First line.\nSecond line.\n" {
		t.Errorf("unexpected normalized text: %q", text)
	}
}

func TestHTML_ExtractVisibleText(t *testing.T) {
	loader := NewLoader()

	html := `<html><head>
<style>body { color: red; }</style>
<script>var x = 1;</script>
</head><body>
<h1>Sprint Review</h1>
<p>We decided to ship on Friday.</p>
<ul><li>John will email the client.</li><li>Can we confirm the budget?</li></ul>
</body></html>`
	path := writeTemp(t, "notes.html", html)

	text, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, want := range []string{"Sprint Review", "We decided to ship on Friday.", "John will email the client."} {
		if !strings.Contains(text, want) {
			t.Errorf("visible text missing %q:\n%s", want, text)
		}
	}
	for _, skip := range []string{"color: red", "var x = 1"} {
		if strings.Contains(text, skip) {
			t.Errorf("script/style content leaked: %q", skip)
		}
	}

	// List items must stay on separate lines so they split into sentences
	if !strings.Contains(text, "\n") {
		t.Error("block elements did not produce line breaks")
	}
}

func TestLoader_RegisterCustomFormat(t *testing.T) {
	loader := NewLoader()
	loader.Register(&fakeFormat{})

	path := writeTemp(t, "notes.fake", "ignored")
	text, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if text != "fake content" {
		t.Errorf("unexpected text: %q", text)
	}
}

type fakeFormat struct{}

func (f *fakeFormat) Name() string          { return "fake" }
func (f *fakeFormat) Extensions() []string  { return []string{".fake"} }
func (f *fakeFormat) ExtractText(string) (string, error) {
	return "fake content", nil
}
