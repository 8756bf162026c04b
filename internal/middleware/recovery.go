package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
)

func Recovery(l *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		l.Error("panic_recovered",
			zap.String("request_id", GetRequestID(c)),
			zap.Any("panic", recovered),
			zap.String("stack", string(debug.Stack())),
		)

		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		c.Abort()
	})
}
