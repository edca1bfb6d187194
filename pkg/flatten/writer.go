package flatten

import (
	"bufio"
	"fmt"
	"io"
)

// Writer emits the output document. Sections are written as they arrive;
// nothing but the section being written is held in memory.
type Writer struct {
	w         *bufio.Writer
	languages map[string]string
	sections  int
}

// NewWriter returns a Writer that tags fenced blocks using languages, a table
// from file extension (without the dot) to language tag.
func NewWriter(w io.Writer, languages map[string]string) *Writer {
	return &Writer{
		w:         bufio.NewWriter(w),
		languages: languages,
	}
}

// WriteTitle writes the document header for a root directory name.
func (w *Writer) WriteTitle(rootName string) error {
	if _, err := fmt.Fprintf(w.w, "# %s Codebase\n\n", rootName); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	return nil
}

// WriteSection writes one file: a heading with its relative path and a
// fenced block with its content verbatim.
func (w *Writer) WriteSection(relPath, content string) error {
	lang := languageFor(relPath, w.languages)
	if _, err := fmt.Fprintf(w.w, "## `%s`\n```%s\n%s\n```\n\n", relPath, lang, content); err != nil {
		return fmt.Errorf("failed to write section %s: %w", relPath, err)
	}
	w.sections++
	return nil
}

// Sections returns the number of sections written so far.
func (w *Writer) Sections() int {
	return w.sections
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
