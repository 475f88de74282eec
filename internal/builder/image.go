package builder

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MaxImageBytes is the upload ceiling for inline images.
const MaxImageBytes = 5 << 20

var (
	ErrNotAnImage   = errors.New("please select an image file")
	ErrImageTooBig  = errors.New("image size must be less than 5MB")
	ErrImageMissing = errors.New("no image data provided")
)

// DecodeUpload validates an uploaded file and returns it as a data URL
// suitable for inline storage in component content. The declared content
// type is trusted when it is an image type; otherwise the payload is
// sniffed.
func DecodeUpload(data []byte, declaredType string) (string, error) {
	if len(data) == 0 {
		return "", ErrImageMissing
	}
	if len(data) > MaxImageBytes {
		return "", ErrImageTooBig
	}

	mime := declaredType
	if !strings.HasPrefix(mime, "image/") {
		mime = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrNotAnImage
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, encoded), nil
}
