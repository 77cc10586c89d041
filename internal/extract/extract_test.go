package extract

import (
	"context"
	"errors"
	"testing"
)

func TestTextFromBytesRejectsUnsupportedTypes(t *testing.T) {
	cases := []struct {
		name     string
		mimeType string
		fileName string
	}{
		{name: "docx", mimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", fileName: "resume.docx"},
		{name: "plain text", mimeType: "text/plain", fileName: "resume.txt"},
		{name: "octet stream without pdf extension", mimeType: "application/octet-stream", fileName: "resume.bin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := TextFromBytes(context.Background(), []byte("data"), tc.mimeType, tc.fileName)
			if !errors.Is(err, ErrUnsupportedType) {
				t.Fatalf("TextFromBytes err = %v, want ErrUnsupportedType", err)
			}
		})
	}
}

func TestTextFromBytesHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := TextFromBytes(ctx, []byte("%PDF-1.4"), "application/pdf", "resume.pdf"); !errors.Is(err, context.Canceled) {
		t.Fatalf("TextFromBytes err = %v, want context.Canceled", err)
	}
}

func TestNormalizeMimeTypeFallsBackToExtension(t *testing.T) {
	if got := normalizeMimeType("application/octet-stream", "resume.PDF"); got != mimePDF {
		t.Fatalf("normalizeMimeType = %q, want %q", got, mimePDF)
	}
	if got := normalizeMimeType("", "resume.pdf"); got != mimePDF {
		t.Fatalf("normalizeMimeType empty = %q, want %q", got, mimePDF)
	}
	if got := normalizeMimeType("application/pdf; charset=binary", "whatever"); got != mimePDF {
		t.Fatalf("normalizeMimeType with params = %q, want %q", got, mimePDF)
	}
}
