package services

import (
	"io"
	"path/filepath"
	"strings"
)

// FileUpload carries one attachment streamed from a multipart request.
type FileUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// sanitizeFilename strips any path components and characters that do not
// belong in an object key.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
