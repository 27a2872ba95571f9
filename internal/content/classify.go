// Package content classifies recovered asset bytes so a presentation layer
// can pick a rendering path. Classification only reads a short prefix; the
// bytes are never modified.
package content

import (
	"bytes"
	"unicode/utf8"
)

// Kind is the rendering path for a piece of content.
type Kind string

const (
	KindPDF    Kind = "pdf"
	KindPNG    Kind = "png"
	KindJPEG   Kind = "jpeg"
	KindGIF    Kind = "gif"
	KindText   Kind = "text"
	KindBinary Kind = "binary"
)

type signature struct {
	prefix []byte
	kind   Kind
}

// signatures is checked in order. Two-byte prefixes match what the
// marketplace frontend has always accepted; add new formats here.
var signatures = []signature{
	{prefix: []byte("%P"), kind: KindPDF},
	{prefix: []byte{0x89, 'P'}, kind: KindPNG},
	{prefix: []byte{0xFF, 0xD8}, kind: KindJPEG},
	{prefix: []byte("GIF8"), kind: KindGIF},
}

// Classify returns the kind of data. Data without a known signature is
// text when it is valid UTF-8 and binary otherwise.
func Classify(data []byte) Kind {
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig.prefix) {
			return sig.kind
		}
	}
	if utf8.Valid(data) {
		return KindText
	}
	return KindBinary
}

// MIMEType is the media type a viewer should be given.
func (k Kind) MIMEType() string {
	switch k {
	case KindPDF:
		return "application/pdf"
	case KindPNG:
		return "image/png"
	case KindJPEG:
		return "image/jpeg"
	case KindGIF:
		return "image/gif"
	case KindText:
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Extension is the file suffix used when content is written to disk.
func (k Kind) Extension() string {
	switch k {
	case KindPDF:
		return ".pdf"
	case KindPNG:
		return ".png"
	case KindJPEG:
		return ".jpg"
	case KindGIF:
		return ".gif"
	case KindText:
		return ".txt"
	default:
		return ".bin"
	}
}

// IsImage reports whether the kind renders as an image.
func (k Kind) IsImage() bool {
	return k == KindPNG || k == KindJPEG || k == KindGIF
}
