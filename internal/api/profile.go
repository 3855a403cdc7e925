package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lukaszlop/ketoggler/internal/service"
	"github.com/lukaszlop/ketoggler/internal/types"
	"github.com/lukaszlop/ketoggler/internal/validation"
)

type ProfileHandler struct {
	profiles service.IProfileService
	log      logrus.FieldLogger
}

func NewProfileHandler(profiles service.IProfileService, log logrus.FieldLogger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	var cmd types.UpdateUserProfileCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondError(c, h.log, validation.FromBindingError(err))
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), userID, &cmd)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
