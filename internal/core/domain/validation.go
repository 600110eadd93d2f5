package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxUploadBytes is the upload size ceiling enforced before any
// network use. It mirrors the server-side limit.
const MaxUploadBytes = 50 << 20 // 50 MiB

// allowedExtensions is the fixed set of uploadable file types,
// matched case-insensitively on the file extension.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".md":   true,
	".html": true,
	".txt":  true,
}

// FileValidation is the outcome of the pre-upload gate.
type FileValidation struct {
	// OK is true when the file may be uploaded.
	OK bool

	// Reason explains a rejection. Empty when OK.
	Reason string
}

// ValidateFile applies the pre-upload gate to a candidate file.
// It is a pure predicate: no filesystem or network access. Each file in
// a multi-file selection is judged independently.
func ValidateFile(name string, size int64) FileValidation {
	if size > MaxUploadBytes {
		return FileValidation{
			Reason: fmt.Sprintf("file exceeds the %d MiB size limit", MaxUploadBytes>>20),
		}
	}

	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return FileValidation{
			Reason: fmt.Sprintf("unsupported file type %q (allowed: pdf, docx, md, html, txt)", ext),
		}
	}

	return FileValidation{OK: true}
}
