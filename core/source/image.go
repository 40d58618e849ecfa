package source

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrEmptyImage is returned when no image bytes were supplied.
var ErrEmptyImage = errors.New("image is empty")

// Image is a decoded image ready to be sent to a vision source.
type Image struct {
	Data     []byte
	MimeType string
}

// NewImage wraps raw bytes, sniffing the MIME type from the content.
func NewImage(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmptyImage
	}
	return Image{Data: data, MimeType: sniff(data)}, nil
}

// DecodeImage accepts either a data URL ("data:image/png;base64,...") or a
// bare base64 string.
func DecodeImage(encoded string) (Image, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return Image{}, ErrEmptyImage
	}

	mime := ""
	if strings.HasPrefix(encoded, "data:") {
		header, payload, ok := strings.Cut(encoded, ",")
		if !ok {
			return Image{}, fmt.Errorf("malformed data url")
		}
		mime = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		encoded = payload
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Clients frequently strip padding
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if err != nil {
			return Image{}, fmt.Errorf("invalid base64 image: %w", err)
		}
	}

	img, err := NewImage(data)
	if err != nil {
		return Image{}, err
	}
	if mime != "" {
		img.MimeType = mime
	}
	return img, nil
}

// DataURL renders the image as a base64 data URL.
func (i Image) DataURL() string {
	return "data:" + i.MimeType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Extension returns a file extension matching the MIME type.
func (i Image) Extension() string {
	switch i.MimeType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/jpeg":
		return ".jpg"
	default:
		return ".bin"
	}
}

func sniff(data []byte) string {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		// Vision APIs reject unknown types; jpeg is the common denominator
		return "image/jpeg"
	}
	return mime
}
