package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beauty-site/internal/config"
	"github.com/BruksfildServices01/beauty-site/internal/whatsapp"
)

type ContactHandler struct {
	profile *config.Profile
}

func NewContactHandler(profile *config.Profile) *ContactHandler {
	return &ContactHandler{profile: profile}
}

// Submit redireciona para a conversa no WhatsApp com a mensagem digitada.
func (h *ContactHandler) Submit(c *gin.Context) {
	msg := strings.TrimSpace(c.PostForm("message"))
	if msg == "" {
		msg = h.profile.ContactGreeting
	}
	c.Redirect(http.StatusSeeOther, whatsapp.Link(h.profile.WhatsApp, msg))
}
