package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tehimas/warung-seblak/auth"
	"github.com/tehimas/warung-seblak/utils"
)

// AuthMiddleware menjaga route admin: token harus valid dan sesinya
// masih ada di store (logout menghapus sesi walau token belum expired).
func AuthMiddleware(store auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if _, err := utils.ParseToken(tokenString); err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid or expired token"))
			c.Abort()
			return
		}

		user, err := store.Load(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Session not found, please login again"))
			c.Abort()
			return
		}

		c.Set("username", user.Username)
		c.Set("full_name", user.FullName)

		c.Next()
	}
}

// WebSocketAuthMiddleware menerima token lewat query param karena
// browser tidak bisa mengirim header pada koneksi websocket.
func WebSocketAuthMiddleware(store auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if _, err := utils.ParseToken(token); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if _, err := store.Load(token); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Next()
	}
}
