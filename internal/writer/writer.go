// Package writer serializes a validated document into a Dataverse TSV
// metadata block. This is a straight serialization loop; all structural
// guarantees come from the lint pass that must precede it.
package writer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schemakit/yml2block/internal/block"
)

// Write renders the document as a TSV metadata block. Sections are emitted
// in canonical keyword order; every header and row is padded with empty
// cells to longestRow columns so all lines are equally wide.
func Write(w io.Writer, doc *block.Document, longestRow int) error {
	for _, keyword := range block.PermissibleKeywords {
		b, ok := doc.Section(keyword)
		if !ok {
			continue
		}
		if err := writeSection(w, keyword, b, longestRow); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile renders the document into a file, replacing any existing
// content.
func WriteFile(path string, doc *block.Document, longestRow int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, doc, longestRow); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSection(w io.Writer, keyword string, b block.Block, longestRow int) error {
	headers := headerUnion(b)

	headerCells := append([]string{sectionMarker(keyword)}, headers...)
	if err := writeRow(w, pad(headerCells, longestRow)); err != nil {
		return err
	}

	for _, rec := range b.Records {
		// Every data row starts with an empty cell under the marker column.
		cells := make([]string, 0, len(headers)+1)
		cells = append(cells, "")
		for _, name := range headers {
			v, ok := rec.Get(name)
			if !ok {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, v.Render())
		}
		if err := writeRow(w, pad(cells, longestRow)); err != nil {
			return err
		}
	}
	return nil
}

// headerUnion collects the field names of all records in first-seen order.
func headerUnion(b block.Block) []string {
	var headers []string
	seen := make(map[string]bool)
	for _, rec := range b.Records {
		for _, f := range rec.Fields {
			if !seen[f.Name] {
				seen[f.Name] = true
				headers = append(headers, f.Name)
			}
		}
	}
	return headers
}

func sectionMarker(keyword string) string {
	return "#" + keyword
}

func pad(cells []string, width int) []string {
	for len(cells) < width {
		cells = append(cells, "")
	}
	return cells
}

func writeRow(w io.Writer, cells []string) error {
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
	return err
}
