package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/middleware"
)

// businessStatus maps rule codes that are not plain 400s.
var businessStatus = map[string]int{
	"appointment_not_found":  http.StatusNotFound,
	"product_not_found":      http.StatusNotFound,
	"banner_not_found":       http.StatusNotFound,
	"submission_in_progress": http.StatusConflict,
}

// writeError turns a use case error into a response: field errors are 422,
// rule violations 400/404/409, anything else is a backend failure whose
// message is shown so the user can retry.
func writeError(c *gin.Context, backendCode string, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Validation(c, ve)
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		status, found := businessStatus[be.Code]
		if !found {
			status = http.StatusBadRequest
		}
		msg := be.Message
		if msg == "" {
			msg = "Requisição inválida."
		}
		httperr.Write(c, status, be.Code, msg)
		return
	}

	zap.L().Error("backend failure",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("code", backendCode),
		zap.Error(err),
	)
	httperr.Backend(c, backendCode, err)
}

// writePartial reports a backend failure that happened after part of the
// work was applied; partial describes what was applied.
func writePartial(c *gin.Context, backendCode string, err error, partial any) {
	zap.L().Error("backend failure after partial update",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("code", backendCode),
		zap.Error(err),
	)
	httperr.BackendPartial(c, backendCode, err, partial)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
