// Package load reads meeting-notes documents into plain text.
// Format handlers are looked up by file extension; document formats with
// their own structure (.docx) are delegated to external libraries.
package load

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrUnsupportedFileType is returned for extensions no format handles
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrUnreadableFile is returned when a supported file cannot be read or decoded
	ErrUnreadableFile = errors.New("unreadable file")
)

// Format reads one document format into plain text
type Format interface {
	// Name returns the format name
	Name() string

	// Extensions returns the lowercase extensions this format handles (with dot)
	Extensions() []string

	// ExtractText reads the file and returns its plain text content
	ExtractText(path string) (string, error)
}

// Loader dispatches documents to format handlers by extension
type Loader struct {
	formats map[string]Format
}

// NewLoader creates a loader with the built-in formats registered
func NewLoader() *Loader {
	l := &Loader{formats: make(map[string]Format)}
	l.Register(&PlainText{})
	l.Register(&HTML{})
	l.Register(&Docx{})
	return l
}

// Register registers a format for its extensions
func (l *Loader) Register(f Format) {
	for _, ext := range f.Extensions() {
		l.formats[ext] = f
	}
}

// Supported reports whether the loader handles the given path's extension
func (l *Loader) Supported(path string) bool {
	_, ok := l.formats[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extensions returns all registered extensions, sorted
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.formats))
	for ext := range l.formats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load reads the document at path and returns its normalized plain text.
// Unknown extensions return ErrUnsupportedFileType; read or decode failures
// return ErrUnreadableFile. Both abort only the current operation.
func (l *Loader) Load(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := l.formats[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFileType, ext, strings.Join(l.Extensions(), ", "))
	}

	text, err := format.ExtractText(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
	}

	return normalize(text), nil
}

// normalize strips a UTF-8 BOM and converts CRLF line endings
func normalize(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// PlainText handles raw text formats
type PlainText struct{}

// Name returns the format name
func (f *PlainText) Name() string { return "text" }

// Extensions returns the extensions read as raw text
func (f *PlainText) Extensions() []string { return []string{".txt", ".md", ".text"} }

// ExtractText reads the file verbatim
func (f *PlainText) ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
