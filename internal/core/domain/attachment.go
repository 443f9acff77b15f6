package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PDFMIMEType is the declared type accepted for uploaded documents.
const PDFMIMEType = "application/pdf"

// AcceptedExtensions is the filename-extension allowlist for attachments.
// The registrar's legacy export format (.faces) is accepted alongside PDF.
var AcceptedExtensions = []string{".pdf", ".faces"}

// SlotKind identifies which upload slot an attachment belongs to.
type SlotKind int

const (
	// SlotTranscript is the mandatory academic transcript slot.
	SlotTranscript SlotKind = iota
	// SlotSupporting is the optional supporting document slot.
	SlotSupporting
)

// String returns the form field name used for the slot on the wire.
func (k SlotKind) String() string {
	switch k {
	case SlotTranscript:
		return "transcript"
	case SlotSupporting:
		return "supporting_doc"
	default:
		return "unknown"
	}
}

// Attachment is a user-selected file bound to one upload slot.
// An Attachment is owned exclusively by its slot and never shared.
type Attachment struct {
	// Path is the location of the file on the local filesystem.
	Path string

	// Name is the bare filename shown to the user.
	Name string

	// DeclaredType is the MIME type derived from the selection source.
	DeclaredType string

	// SizeBytes is the file size, >= 0.
	SizeBytes int64
}

// AttachmentFromFile builds an attachment from a file on disk. The
// declared type is derived from the filename extension; only PDF has a
// known type.
func AttachmentFromFile(path string) (Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("reading attachment info: %w", err)
	}
	if info.IsDir() {
		return Attachment{}, fmt.Errorf("attachment %s is a directory", path)
	}

	declared := ""
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		declared = PDFMIMEType
	}

	return Attachment{
		Path:         path,
		Name:         filepath.Base(path),
		DeclaredType: declared,
		SizeBytes:    info.Size(),
	}, nil
}

// Accepted reports whether the attachment satisfies the upload policy:
// declared type application/pdf, or a filename on the extension allowlist.
func (a Attachment) Accepted() bool {
	if a.DeclaredType == PDFMIMEType {
		return true
	}
	ext := strings.ToLower(filepath.Ext(a.Name))
	for _, allowed := range AcceptedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Label returns the display label for a selected attachment,
// "<filename> (<formattedSize>)".
func (a Attachment) Label() string {
	return fmt.Sprintf("%s (%s)", a.Name, FormatSize(a.SizeBytes))
}

// FormatSize renders a byte count for display. Sizes below 1 KiB are
// shown in bytes, below 1 MiB in KB with one decimal, otherwise in MB
// with one decimal.
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1048576:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/1048576)
	}
}
