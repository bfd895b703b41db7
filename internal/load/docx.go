package load

import (
	"fmt"

	"code.sajari.com/docconv"
)

// Docx handles Word documents. Parsing is delegated entirely to docconv.
type Docx struct{}

// Name returns the format name
func (f *Docx) Name() string { return "docx" }

// Extensions returns the Word document extensions
func (f *Docx) Extensions() []string { return []string{".docx"} }

// ExtractText converts the document to plain text
func (f *Docx) ExtractText(path string) (string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", fmt.Errorf("convert docx: %w", err)
	}
	return res.Body, nil
}
