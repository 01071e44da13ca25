package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/osociohoteleiro/praiabela/services"
	"github.com/osociohoteleiro/praiabela/utils"
)

// AdminIDKey is where RequireAuth stores the authenticated admin id in
// the gin context.
const AdminIDKey = "adminID"

// RequireAuth guards admin routes. It expects "Authorization: Bearer
// <token>" and rejects missing, malformed, expired or badly signed
// tokens with 401.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.JSONError(c, http.StatusUnauthorized, utils.CodeUnauthorized, "Token não fornecido")
			c.Abort()
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, utils.CodeUnauthorized, "Formato de token inválido")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, utils.CodeUnauthorized, "Token inválido ou expirado")
			c.Abort()
			return
		}

		c.Set(AdminIDKey, claims.ID)
		c.Next()
	}
}

// AdminID reads the id RequireAuth stored, returning false when the
// route was reached without the middleware.
func AdminID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(AdminIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
