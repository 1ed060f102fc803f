package middleware

import (
	"crypto/subtle"

	"nexus-booking/internal/handler/httperr"
	"nexus-booking/internal/pkg/apperr"
	"nexus-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const adminSecretHeader = "X-Admin-Secret"

type AdminAuthMiddleware struct {
	secret string
}

func NewAdminAuthMiddleware(cfg config.Config) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{secret: cfg.Admin.Secret}
}

// RequireAdmin guards the /admin group with the shared-secret header.
// A missing header is UNAUTHORIZED, a wrong one FORBIDDEN.
func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(adminSecretHeader)
		if provided == "" {
			httperr.Abort(c, apperr.New(apperr.KindUnauthorized, map[string]any{"header": adminSecretHeader}))
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.secret)) != 1 {
			httperr.Abort(c, apperr.New(apperr.KindForbidden, nil))
			return
		}
		c.Next()
	}
}
