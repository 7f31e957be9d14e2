package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busjo/internal/http/middleware"
	"busjo/internal/services"
)

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	result, err := h.Session.Login(req.Identifier, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	if err := h.Session.Logout(user.UserID); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to clear session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/profile
func (h *Handler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{
			"guest":   true,
			"balance": services.GuestBalance(h.Data.Current()),
		})
		return
	}
	u := *user
	u.Password = ""
	c.JSON(http.StatusOK, gin.H{"guest": false, "user": u, "balance": u.Balance})
}
