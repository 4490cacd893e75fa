package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinerate/internal/auth"
	"cinerate/internal/repository"
	"cinerate/internal/service"
)

// errorResponse maps service errors to a status code plus a body with a
// machine-readable kind and a human message. Unexpected errors are logged
// and surfaced as a generic internal failure.
func (h *Handler) errorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation_error", "message": err.Error()})
	case errors.Is(err, service.ErrDuplicateReview):
		c.JSON(http.StatusConflict, gin.H{"kind": "duplicate_review", "message": "you have already reviewed this movie"})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"kind": "username_taken", "message": "username already exists"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"kind": "email_taken", "message": "email already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"kind": "invalid_credentials", "message": "invalid credentials"})
	case errors.Is(err, auth.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"kind": "unauthenticated", "message": "authentication required"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"kind": "forbidden", "message": "you may only modify your own reviews"})
	case errors.Is(err, service.ErrReviewNotFound),
		errors.Is(err, service.ErrMovieNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"kind": "not_found", "message": err.Error()})
	default:
		h.logger.WithError(err).Error("internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"kind": "internal_error", "message": "internal server error"})
	}
}

// badRequest reports a body/binding failure.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"kind": "validation_error", "message": err.Error()})
}
