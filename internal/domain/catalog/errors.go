package catalog

import "github.com/BruksfildServices01/lahermandad/internal/httperr"

var (
	ErrProductNotFound = httperr.ErrBusinessMsg("product_not_found", "Produto não encontrado.")
	ErrBannerNotFound  = httperr.ErrBusinessMsg("banner_not_found", "Banner não encontrado.")
	ErrSizeUnavailable = httperr.ErrBusinessMsg("size_unavailable", "Tamanho indisponível para este produto.")
)
