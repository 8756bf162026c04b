package catalog

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/imageproc"
	"github.com/BruksfildServices01/lahermandad/internal/storage"
)

// ImageUpload is a file received from the admin form.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// Images optimizes uploads and moves them in and out of object storage.
type Images struct {
	store storage.Storage
	opts  imageproc.Options
}

func NewImages(store storage.Storage, opts imageproc.Options) *Images {
	return &Images{store: store, opts: opts}
}

var errInvalidImage = httperr.NewFieldError("image", "invalid_image", "Envie uma imagem JPG, PNG, GIF ou WebP.")

func (i *Images) upload(ctx context.Context, up *ImageUpload) (storage.PutResult, error) {
	res, err := imageproc.Optimize(up.Data, i.opts)
	if errors.Is(err, imageproc.ErrUnsupportedFormat) {
		return storage.PutResult{}, errInvalidImage
	}
	if err != nil {
		zap.L().Warn("image optimization failed", zap.String("filename", up.Filename), zap.Error(err))
		return storage.PutResult{}, errInvalidImage
	}

	base := strings.TrimSuffix(filepath.Base(up.Filename), filepath.Ext(up.Filename))
	return i.store.Put(ctx, bytes.NewReader(res.Data), storage.PutInput{
		Filename:    base + ".webp",
		ContentType: res.ContentType,
		Size:        int64(len(res.Data)),
	})
}

// discard removes an object that is no longer referenced. Failures leave an
// orphan in the bucket and are only logged.
func (i *Images) discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := i.store.Delete(ctx, key); err != nil {
		zap.L().Warn("failed to delete stored image", zap.String("key", key), zap.Error(err))
	}
}
