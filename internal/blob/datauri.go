package blob

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid data URI")

// DataURI is a decoded data: URI as sent by the image translator.
type DataURI struct {
	ContentType string
	Data        []byte
}

// ParseDataURI decodes "data:<type>;base64,<payload>". Only base64 payloads are
// accepted.
func ParseDataURI(s string) (*DataURI, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrInvalidDataURI
	}
	contentType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, ErrInvalidDataURI
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Join(ErrInvalidDataURI, err)
	}
	return &DataURI{ContentType: contentType, Data: data}, nil
}

// String encodes d back into a data URI.
func (d *DataURI) String() string {
	return "data:" + d.ContentType + ";base64," + base64.StdEncoding.EncodeToString(d.Data)
}

// Extension guesses a file extension for the content type.
func (d *DataURI) Extension() string {
	switch d.ContentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
