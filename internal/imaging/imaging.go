// Package imaging bounds and re-encodes uploaded images before they reach
// object storage, so stored gallery images stay small regardless of what
// the admin selects.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoding
)

const (
	// MaxDimension is the bound on the longer image side in pixels.
	MaxDimension = 1280
	// TargetBytes is the soft size target for the re-encoded image.
	TargetBytes = 200 << 10 // ~0.2 MB
)

// quality steps tried in order until the encoded size fits TargetBytes.
var qualitySteps = []int{85, 70, 55, 40}

// Result is a compressed image ready for upload.
type Result struct {
	Data        []byte
	ContentType string
	Ext         string
}

// Compress decodes a JPEG, PNG or WebP image, scales it down so the longer
// side is at most MaxDimension, and re-encodes it as JPEG stepping down the
// quality until the result fits TargetBytes (best effort; the lowest step
// wins if none fit).
func Compress(data []byte) (*Result, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	src = scaleDown(src, MaxDimension)

	var out []byte
	for _, q := range qualitySteps {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: q}); err != nil {
			return nil, fmt.Errorf("imaging: encode: %w", err)
		}
		out = buf.Bytes()
		if len(out) <= TargetBytes {
			break
		}
	}

	return &Result{Data: out, ContentType: "image/jpeg", Ext: ".jpg"}, nil
}

// scaleDown returns src scaled so its longer side is at most max, or src
// unchanged when already within bounds.
func scaleDown(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	var nw, nh int
	if w >= h {
		nw = max
		nh = h * max / w
	} else {
		nh = max
		nw = w * max / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
