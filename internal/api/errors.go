package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lukaszlop/ketoggler/internal/logging"
	"github.com/lukaszlop/ketoggler/internal/middleware"
	"github.com/lukaszlop/ketoggler/internal/service"
	"github.com/lukaszlop/ketoggler/internal/validation"
)

// ErrorResponse is the error body of every endpoint except GET /recipes
type ErrorResponse struct {
	Error   string `json:"error"`
	Message any    `json:"message,omitempty"`
}

// ListErrorResponse is the error body of GET /recipes
type ListErrorResponse struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message,omitempty"`
	Details []validation.FieldError `json:"details,omitempty"`
}

var (
	errServer       = ErrorResponse{Error: "ServerError", Message: "Internal server error"}
	errNotFound     = ErrorResponse{Error: "NotFound"}
	errUnauthorized = ErrorResponse{Error: "Unauthorized"}
)

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrRecipeNotFound) ||
		errors.Is(err, service.ErrFavoriteNotFound) ||
		errors.Is(err, service.ErrProfileNotFound)
}

// respondError translates a service or validation error into a response
func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ValidationError", Message: verrs.Flatten()})
	case isNotFound(err):
		c.JSON(http.StatusNotFound, errNotFound)
	default:
		entry := logging.FromContext(c.Request.Context(), log).WithError(err)
		var stepErr *service.StepError
		if errors.As(err, &stepErr) {
			entry = entry.WithField("step", stepErr.Step)
		}
		entry.Error("request failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errServer)
	}
}

// owner returns the caller id set by middleware.Identity
func owner(c *gin.Context) (string, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errUnauthorized)
	}
	return id, ok
}

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, validation.Errors{{Path: name, Message: fmt.Sprintf("Expected positive integer, received %q", raw)}}
	}
	return uint(id), nil
}
