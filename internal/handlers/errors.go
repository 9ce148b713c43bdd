package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/httperr"
)

// respondError registra err e responde com o envelope padrão de erro.
func respondError(c *gin.Context, logger *zap.Logger, op string, err error, message string) {
	status := httperr.Status(err)

	code := string(httperr.KindOf(err))
	var be httperr.BusinessError
	if errors.As(err, &be) {
		code = be.Code
	}
	if code == "" {
		code = op + "_failed"
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("op", op), zap.String("code", code), zap.Error(err))
	} else {
		logger.Info("request rejected", zap.String("op", op), zap.String("code", code), zap.Error(err))
	}

	httperr.Write(c, status, code, message)
}
