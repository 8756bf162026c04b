package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xwebp "golang.org/x/image/webp"
	"go.uber.org/zap"
)

const ContentTypeWebP = "image/webp"

var ErrUnsupportedFormat = errors.New("unsupported image format")

type Options struct {
	// MaxDimension caps the longest side; smaller images are left as is.
	MaxDimension int
	Quality      float32
}

type Result struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Optimize re-encodes an uploaded JPEG, PNG, GIF or WebP as lossy WebP,
// downscaled to fit MaxDimension.
func Optimize(data []byte, opts Options) (Result, error) {
	img, format, err := decode(data)
	if err != nil {
		return Result{}, err
	}

	b := img.Bounds()
	if opts.MaxDimension > 0 && (b.Dx() > opts.MaxDimension || b.Dy() > opts.MaxDimension) {
		img = imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.Lanczos)
	}

	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = 80
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return Result{}, fmt.Errorf("encode webp: %w", err)
	}

	out := img.Bounds()
	zap.L().Debug("image optimized",
		zap.String("source_format", format),
		zap.Int("source_bytes", len(data)),
		zap.Int("output_bytes", buf.Len()),
		zap.Int("width", out.Dx()),
		zap.Int("height", out.Dy()),
	)

	return Result{
		Data:        buf.Bytes(),
		ContentType: ContentTypeWebP,
		Width:       out.Dx(),
		Height:      out.Dy(),
	}, nil
}

func decode(data []byte) (image.Image, string, error) {
	r := bytes.NewReader(data)

	var (
		img    image.Image
		err    error
		format string
	)
	switch ct := http.DetectContentType(data); ct {
	case "image/jpeg":
		format = "jpeg"
		img, err = jpeg.Decode(r)
	case "image/png":
		format = "png"
		img, err = png.Decode(r)
	case "image/gif":
		format = "gif"
		img, err = gif.Decode(r)
	case "image/webp":
		format = "webp"
		img, err = xwebp.Decode(r)
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ct)
	}
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", format, err)
	}
	return img, format, nil
}
