package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"devconnector/internal/service"
	"devconnector/internal/validation"
)

// PostHandler mantiene dependencias para endpoints del feed.
type PostHandler struct {
	logger   *zap.Logger
	postServ *service.PostService
}

func NewPostHandler(logger *zap.Logger, postServ *service.PostService) *PostHandler {
	return &PostHandler{
		logger:   logger,
		postServ: postServ,
	}
}

// List maneja GET /api/posts.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list posts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetByID maneja GET /api/posts/:id.
func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.postServ.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create maneja POST /api/posts.
func (h *PostHandler) Create(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req validation.PostPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if res := validation.ValidatePost(req); !res.IsValid() {
		c.JSON(http.StatusBadRequest, res.Errors)
		return
	}

	post, err := h.postServ.Create(c.Request.Context(), user.ID, user.Name, user.Avatar, req.Text)
	if err != nil {
		h.logger.Error("create post failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Delete maneja DELETE /api/posts/:id. Sólo el dueño puede borrar.
func (h *PostHandler) Delete(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.postServ.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotPostOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
			return
		}
		h.respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Like maneja POST /api/posts/like/:id.
func (h *PostHandler) Like(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	post, err := h.postServ.Like(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAlreadyLiked) {
			c.JSON(http.StatusBadRequest, gin.H{"alreadyliked": "User already liked this post"})
			return
		}
		h.respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Unlike maneja POST /api/posts/unlike/:id.
func (h *PostHandler) Unlike(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	post, err := h.postServ.Unlike(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotLiked) {
			c.JSON(http.StatusBadRequest, gin.H{"notliked": "User has not yet liked this post"})
			return
		}
		h.respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// AddComment maneja POST /api/posts/comment/:id.
func (h *PostHandler) AddComment(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req validation.PostPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid comment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if res := validation.ValidatePost(req); !res.IsValid() {
		c.JSON(http.StatusBadRequest, res.Errors)
		return
	}

	post, err := h.postServ.AddComment(c.Request.Context(), user.ID, user.Name, user.Avatar, c.Param("id"), req.Text)
	if err != nil {
		h.respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeleteComment maneja DELETE /api/posts/comment/:id/:commentId.
func (h *PostHandler) DeleteComment(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	post, err := h.postServ.DeleteComment(c.Request.Context(), user.ID, c.Param("id"), c.Param("commentId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"comment": "Comment not found"})
		case errors.Is(err, service.ErrNotCommentOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		default:
			h.respondPostError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) respondPostError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"post": "No post found"})
		return
	}
	h.logger.Error("post operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
