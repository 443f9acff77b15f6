package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 500, "500 B"},
		{"boundary below KB", 1023, "1023 B"},
		{"exact KB", 1024, "1.0 KB"},
		{"two KB", 2048, "2.0 KB"},
		{"fractional KB", 1536, "1.5 KB"},
		{"boundary below MB", 1048575, "1024.0 KB"},
		{"exact MB", 1048576, "1.0 MB"},
		{"three MB", 3145728, "3.0 MB"},
		{"fractional MB", 5767168, "5.5 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}

func TestAttachment_Accepted(t *testing.T) {
	tests := []struct {
		name string
		att  Attachment
		want bool
	}{
		{"pdf mime", Attachment{Name: "x.bin", DeclaredType: PDFMIMEType}, true},
		{"pdf extension", Attachment{Name: "transcript.pdf", DeclaredType: "application/octet-stream"}, true},
		{"faces extension", Attachment{Name: "export.faces", DeclaredType: ""}, true},
		{"uppercase extension", Attachment{Name: "TRANSCRIPT.PDF", DeclaredType: ""}, true},
		{"plain text", Attachment{Name: "notes.txt", DeclaredType: "text/plain"}, false},
		{"no extension", Attachment{Name: "transcript", DeclaredType: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.att.Accepted())
		})
	}
}

func TestAttachment_Label(t *testing.T) {
	att := Attachment{Name: "transcript.pdf", SizeBytes: 2048}
	assert.Equal(t, "transcript.pdf (2.0 KB)", att.Label())
}

func TestSlotKind_String(t *testing.T) {
	assert.Equal(t, "transcript", SlotTranscript.String())
	assert.Equal(t, "supporting_doc", SlotSupporting.String())
}
