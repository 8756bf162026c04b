package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	ucCatalog "github.com/BruksfildServices01/lahermandad/internal/usecase/catalog"
)

const maxImageBytes = 10 << 20

var errImageTooLarge = httperr.NewFieldError("image", "image_too_large", "A imagem deve ter no máximo 10 MB.")

// readImage returns the "image" multipart file, or nil when none was sent.
func readImage(c *gin.Context) (*ucCatalog.ImageUpload, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fh.Size > maxImageBytes {
		return nil, errImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageBytes {
		return nil, errImageTooLarge
	}

	return &ucCatalog.ImageUpload{Filename: fh.Filename, Data: data}, nil
}
