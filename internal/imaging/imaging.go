// Package imaging decodes uploaded images and produces bounded thumbnails.
package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"

	_ "image/gif"
	_ "image/jpeg"
)

// MaxUploadBytes bounds accepted upload size.
const MaxUploadBytes = 12 << 20

// ThumbMaxDim is the longest edge of a generated thumbnail.
const ThumbMaxDim = 320

// ErrUnsupported is returned for bytes that none of the decoders accept.
var ErrUnsupported = errors.New("unsupported image format")

// Processed is the result of decoding an upload.
type Processed struct {
	MIME   string
	Width  int
	Height int
	Thumb  []byte // PNG-encoded; nil when the original fits within ThumbMaxDim
}

// AllowedMIME reports whether an upload content type is accepted.
func AllowedMIME(mime string) bool {
	switch mime {
	case "image/png", "image/jpeg", "image/webp", "image/gif":
		return true
	}
	return false
}

// Process decodes raw image bytes and renders a thumbnail when the image
// exceeds ThumbMaxDim on either edge.
func Process(raw []byte) (*Processed, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty image")
	}
	if len(raw) > MaxUploadBytes {
		return nil, errors.New("image too large")
	}
	img, format, err := decode(raw)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	p := &Processed{
		MIME:   "image/" + format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	if p.Width <= ThumbMaxDim && p.Height <= ThumbMaxDim {
		return p, nil
	}

	tw, th := fit(p.Width, p.Height, ThumbMaxDim)
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	p.Thumb = buf.Bytes()
	return p, nil
}

// decode tries the registered stdlib decoders first, then webp, which does
// not register itself with image.Decode.
func decode(raw []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err == nil {
		return img, format, nil
	}
	if decoded, webpErr := webp.Decode(bytes.NewReader(raw)); webpErr == nil {
		return decoded, "webp", nil
	}
	return nil, "", ErrUnsupported
}

// fit scales (w, h) so the longest edge equals max, preserving aspect.
func fit(w, h, max int) (int, int) {
	if w >= h {
		scaled := h * max / w
		if scaled < 1 {
			scaled = 1
		}
		return max, scaled
	}
	scaled := w * max / h
	if scaled < 1 {
		scaled = 1
	}
	return scaled, max
}
