package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/middleware"
)

const adminTokenTTL = 24 * time.Hour

type AdminAuthHandler struct {
	passwordHash string
	secret       string
	now          func() time.Time
	logger       *zap.Logger
}

func NewAdminAuthHandler(passwordHash, secret string, logger *zap.Logger) *AdminAuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminAuthHandler{
		passwordHash: passwordHash,
		secret:       secret,
		now:          time.Now,
		logger:       logger,
	}
}

// --------- Requests ---------

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AdminAuthHandler) Login(c *gin.Context) {
	if h.passwordHash == "" {
		httperr.ServiceUnavailable(c, "admin_disabled", "Acesso administrativo não configurado.")
		return
	}

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe a senha.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		h.logger.Warn("admin login rejected", zap.String("ip", c.ClientIP()))
		httperr.Unauthorized(c, "invalid_credentials", "Senha inválida.")
		return
	}

	now := h.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  middleware.AdminRole,
		"role": middleware.AdminRole,
		"iat":  now.Unix(),
		"exp":  now.Add(adminTokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		h.logger.Error("admin token signing failed", zap.Error(err))
		httperr.Internal(c, "token_generation_failed", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      signed,
		"expires_at": now.Add(adminTokenTTL).UTC(),
	})
}
