package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"devconnector/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas de la API.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userSvc *service.UserService,
	userH *UserHandler,
	profileH *ProfileHandler,
	postH *PostHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	auth := JWTAuthMiddleware(logger, jwtSvc, userSvc)

	users := r.Group("/api/users")
	users.POST("/register", userH.Register)
	users.POST("/login", userH.Login)
	users.GET("/current", auth, userH.Current)
	users.DELETE("", auth, userH.DeleteAccount)

	profile := r.Group("/api/profile")
	profile.GET("", auth, profileH.GetOwn)
	profile.POST("", auth, profileH.Upsert)
	profile.DELETE("", auth, profileH.Delete)
	profile.GET("/all", profileH.List)
	profile.GET("/handle/:handle", profileH.GetByHandle)
	profile.GET("/user/:userId", profileH.GetByUserID)
	profile.PUT("/experience", auth, profileH.AddExperience)
	profile.POST("/experience/:entryId", auth, profileH.UpdateExperience)
	profile.DELETE("/experience/:entryId", auth, profileH.RemoveExperience)
	profile.PUT("/education", auth, profileH.AddEducation)
	profile.POST("/education/:entryId", auth, profileH.UpdateEducation)
	profile.DELETE("/education/:entryId", auth, profileH.RemoveEducation)

	posts := r.Group("/api/posts")
	posts.GET("", postH.List)
	posts.GET("/:id", postH.GetByID)
	posts.POST("", auth, postH.Create)
	posts.DELETE("/:id", auth, postH.Delete)
	posts.POST("/like/:id", auth, postH.Like)
	posts.POST("/unlike/:id", auth, postH.Unlike)
	posts.POST("/comment/:id", auth, postH.AddComment)
	posts.DELETE("/comment/:id/:commentId", auth, postH.DeleteComment)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
