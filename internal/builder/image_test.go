package builder

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Requirement: Valid image uploads become data URLs carrying the image MIME
// type and the base64 payload.
func TestDecodeUpload(t *testing.T) {
	// Arrange
	data := append(append([]byte{}, pngHeader...), 0x00, 0x00, 0x00, 0x0d)

	// Act
	got, err := DecodeUpload(data, "image/png")

	// Assert
	if err != nil {
		t.Fatalf("DecodeUpload() error = %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("DecodeUpload() = %q, want data URL prefix", got)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
	if err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}
	if string(decoded) != string(data) {
		t.Error("decoded payload differs from upload")
	}
}

// Requirement: When the declared content type is not an image type, the
// payload is sniffed and image content still passes.
func TestDecodeUploadSniffsContentType(t *testing.T) {
	data := append(append([]byte{}, pngHeader...), 0x00)

	got, err := DecodeUpload(data, "application/octet-stream")
	if err != nil {
		t.Fatalf("DecodeUpload() error = %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("DecodeUpload() = %q, want sniffed image/png data URL", got)
	}
}

// Requirement: Non-image files, oversized files, and empty uploads are each
// rejected with their own error.
func TestDecodeUploadRejections(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		declared string
		wantErr  error
	}{
		{name: "plain text file", data: []byte("hello world"), declared: "text/plain", wantErr: ErrNotAnImage},
		{name: "pdf declared as itself", data: []byte("%PDF-1.4"), declared: "application/pdf", wantErr: ErrNotAnImage},
		{name: "over the size ceiling", data: make([]byte, MaxImageBytes+1), declared: "image/png", wantErr: ErrImageTooBig},
		{name: "empty upload", data: nil, declared: "image/png", wantErr: ErrImageMissing},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeUpload(test.data, test.declared)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("DecodeUpload() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

// Requirement: An upload of exactly the 5MB ceiling still passes.
func TestDecodeUploadAtSizeLimit(t *testing.T) {
	data := make([]byte, MaxImageBytes)
	copy(data, pngHeader)

	if _, err := DecodeUpload(data, "image/png"); err != nil {
		t.Errorf("DecodeUpload(limit-sized) error = %v", err)
	}
}
