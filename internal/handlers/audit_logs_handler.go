package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	infraRepo "github.com/BruksfildServices01/lahermandad/internal/infra/repository"
	"github.com/BruksfildServices01/lahermandad/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type auditLogLister interface {
	List(ctx context.Context, f infraRepo.AuditLogFilter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs auditLogLister
}

func NewAuditLogsHandler(logs auditLogLister) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := infraRepo.AuditLogFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Optional date range (YYYY-MM-DD, inclusive)
	// --------------------------------------------------
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		f.To = &to
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, "audit_list_failed", err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
