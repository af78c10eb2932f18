package service

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// defaultPhotoType is used when the photo's content is not recognised as an image.
const defaultPhotoType = "image/png"

// EncodePhoto renders a stored photo as a data URI, e.g. "data:image/jpeg;base64,/9j/4AAQ...".
func EncodePhoto(raw []byte) string {
	mediaType := defaultPhotoType
	if detected := mimetype.Detect(raw); strings.HasPrefix(detected.String(), "image/") {
		mediaType = detected.String()
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

// DecodePhoto parses a data URI as produced by EncodePhoto. Everything up to the first comma is
// ignored; the remainder must be standard base64.
func DecodePhoto(text string) ([]byte, error) {
	_, payload, found := strings.Cut(text, ",")
	if !found {
		return nil, formatError("invalid photo file")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, formatError("invalid photo file")
	}
	return raw, nil
}
