package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"devconnector/internal/domain"
	"devconnector/internal/service"
)

const authUserKey = "auth_user"

// JWTAuthMiddleware valida el bearer token y resuelve el sujeto contra el
// repositorio de usuarios: un token bien formado cuyo sujeto ya no existe
// no autentica. Toda variante de fallo responde el mismo 401 para no
// filtrar cuál chequeo falló.
func JWTAuthMiddleware(logger *zap.Logger, jwtSvc *service.JWTService, userSvc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSvc == nil || userSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := jwtSvc.Parse(token)
		if err != nil {
			logger.Warn("token rejected", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		user, err := userSvc.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				logger.Warn("token rejected", zap.Error(service.ErrUnknownSubject))
				c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			} else {
				logger.Error("subject lookup failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			c.Abort()
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// GetAuthUser obtiene el sujeto autenticado desde el contexto.
func GetAuthUser(c *gin.Context) (domain.User, bool) {
	val, ok := c.Get(authUserKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := val.(domain.User)
	return user, ok
}
