package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quizarena/internal/apperr"
	"quizarena/internal/logger"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Unexpected errors are logged with the request path and replaced by a
// generic message so internals never reach the client.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var validation *apperr.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "ressource introuvable"})
	case errors.Is(err, apperr.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "accès refusé"})
	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur interne du serveur"})
	}
}

// paramID parses a numeric path parameter, answering 400 itself when
// the value is not a positive integer.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return 0, false
	}
	return id, true
}
