package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"paper2audio/models"

	"rsc.io/pdf"
)

// Load reads the PDF at path into memory. The bytes come back exactly as
// stored on disk; structural validation is left to the remote model, which
// sees the same bytes and rejects what it cannot read.
func Load(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("document %s is empty", path)
	}

	doc := &models.Document{
		FilePath:  path,
		FileName:  filepath.Base(path),
		Data:      data,
		SizeBytes: int64(len(data)),
		PageCount: pageCount(data),
	}

	return doc, nil
}

// pageCount reports the page count when the bytes parse as a PDF and 0
// otherwise. Only used for logging, so parse failures are swallowed.
func pageCount(data []byte) (n int) {
	// rsc.io/pdf panics on some malformed inputs
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return r.NumPage()
}
