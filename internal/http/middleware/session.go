package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"busjo/internal/domain"
	"busjo/internal/domain/models"
	"busjo/internal/services"
)

const currentUserKey = "current_user"

// Session resolves the bearer token into the current user and stores it in
// the context. No token means guest mode and the chain continues; a token
// that fails to resolve is rejected here so handlers never see a half-valid
// session.
func Session(svc services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		user, err := svc.Current(token)
		if err != nil {
			status := http.StatusUnauthorized
			if domain.IsInternal(err) {
				status = http.StatusInternalServerError
			}
			c.AbortWithStatusJSON(status, gin.H{
				"error":      err.Error(),
				"request_id": GetRequestID(c),
			})
			return
		}
		if user != nil {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentUser returns the resolved session user, nil for guests.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
