package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/lahermandad/internal/audit"
	"github.com/BruksfildServices01/lahermandad/internal/config"
	"github.com/BruksfildServices01/lahermandad/internal/domain/user"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/httpresp"
	"github.com/BruksfildServices01/lahermandad/internal/middleware"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	users  user.Repository
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(users user.Repository, cfg *config.Config, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{users: users, config: cfg, audit: audit}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req validators.LoginForm
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if ve := validators.Struct(req); ve != nil {
		httperr.Validation(c, ve)
		return
	}

	u, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha inválidos.")
		return
	}
	if err != nil {
		writeError(c, "login_failed", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha inválidos.")
		return
	}

	token, expiresAt, err := h.generateToken(u)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &u.ID,
		Action: audit.ActionAdminLogin,
		Entity: "user",
	})

	httpresp.OK(c, gin.H{
		"user":       u,
		"token":      token,
		"expires_at": expiresAt,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.users.FindByID(c.Request.Context(), middleware.UserID(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Unauthorized(c, "user_not_found", "Usuário não encontrado.")
		return
	}
	if err != nil {
		writeError(c, "user_lookup_failed", err)
		return
	}
	httpresp.OK(c, gin.H{"user": u})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(u *models.User) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	return signed, exp, err
}
