package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"devconnector/internal/service"
	"devconnector/internal/validation"
)

// ProfileHandler mantiene dependencias para endpoints de perfiles.
type ProfileHandler struct {
	logger      *zap.Logger
	profileServ *service.ProfileService
}

func NewProfileHandler(logger *zap.Logger, profileServ *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		logger:      logger,
		profileServ: profileServ,
	}
}

// GetOwn maneja GET /api/profile.
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.profileServ.GetByUserID(c.Request.Context(), user.ID)
	if err != nil {
		h.respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// List maneja GET /api/profile/all.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list profiles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list profiles"})
		return
	}
	if len(profiles) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"profiles": "There are no profiles"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetByHandle maneja GET /api/profile/handle/:handle.
func (h *ProfileHandler) GetByHandle(c *gin.Context) {
	profile, err := h.profileServ.GetByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		h.respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetByUserID maneja GET /api/profile/user/:userId.
func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	profile, err := h.profileServ.GetByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Upsert maneja POST /api/profile.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req validation.ProfilePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if res := validation.ValidateProfile(req); !res.IsValid() {
		c.JSON(http.StatusBadRequest, res.Errors)
		return
	}

	profile, err := h.profileServ.Upsert(c.Request.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, service.ErrHandleTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"handle": "Handle already exists"})
			return
		}
		h.logger.Error("upsert profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Delete maneja DELETE /api/profile.
func (h *ProfileHandler) Delete(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.profileServ.Delete(c.Request.Context(), user.ID); err != nil {
		h.logger.Error("delete profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddExperience maneja PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req validation.ExperiencePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid experience request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if res := validation.ValidateExperience(req); !res.IsValid() {
		c.JSON(http.StatusBadRequest, res.Errors)
		return
	}

	profile, err := h.profileServ.AddExperience(c.Request.Context(), user.ID, req)
	if err != nil {
		h.respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateExperience maneja POST /api/profile/experience/:entryId.
func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req validation.ExperiencePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid experience request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if res := validation.ValidateExperience(req); !res.IsValid() {
		c.JSON(http.StatusBadRequest, res.Errors)
		return
	}

	profile, err := h.profileServ.UpdateExperience(c.Request.Context(), user.ID, c.Param("entryId"), req)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"experience": "Experience not found"})
			return
		}
		h.respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveExperience maneja DELETE /api/profile/experience/:entryId.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.profileServ.RemoveExperience(c.Request.Context(), user.ID, c.Param("entryId"))
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"experience": "Experience not found"})
			return
		}
		h.respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddEducation maneja PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req validation.EducationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid education request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if res := validation.ValidateEducation(req); !res.IsValid() {
		c.JSON(http.StatusBadRequest, res.Errors)
		return
	}

	profile, err := h.profileServ.AddEducation(c.Request.Context(), user.ID, req)
	if err != nil {
		h.respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateEducation maneja POST /api/profile/education/:entryId.
func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req validation.EducationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid education request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if res := validation.ValidateEducation(req); !res.IsValid() {
		c.JSON(http.StatusBadRequest, res.Errors)
		return
	}

	profile, err := h.profileServ.UpdateEducation(c.Request.Context(), user.ID, c.Param("entryId"), req)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"education": "Education not found"})
			return
		}
		h.respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveEducation maneja DELETE /api/profile/education/:entryId.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.profileServ.RemoveEducation(c.Request.Context(), user.ID, c.Param("entryId"))
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"education": "Education not found"})
			return
		}
		h.respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) respondProfileError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"profile": "There is no profile for this user"})
		return
	}
	h.logger.Error("profile operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
