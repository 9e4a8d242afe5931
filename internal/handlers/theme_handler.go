package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizarena/internal/logger"
	"quizarena/internal/models"
	"quizarena/internal/service"
)

type ThemeHandler struct {
	Catalog *service.CatalogService
	Log     *logger.Logger
}

func NewThemeHandler(catalog *service.CatalogService, log *logger.Logger) *ThemeHandler {
	return &ThemeHandler{Catalog: catalog, Log: log}
}

// ListThemes returns the active themes only.
func (h *ThemeHandler) ListThemes(c *gin.Context) {
	themes, err := h.Catalog.ListThemes(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, themes)
}

// ListAllThemes is the admin view, deactivated themes included.
func (h *ThemeHandler) ListAllThemes(c *gin.Context) {
	themes, err := h.Catalog.ListAllThemes(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, themes)
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	theme, err := h.Catalog.GetTheme(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (h *ThemeHandler) CreateTheme(c *gin.Context) {
	var theme models.Theme
	if err := c.ShouldBindJSON(&theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}
	created, err := h.Catalog.CreateTheme(c.Request.Context(), theme)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ThemeHandler) UpdateTheme(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var update models.ThemeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}
	theme, err := h.Catalog.UpdateTheme(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (h *ThemeHandler) DeleteTheme(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteTheme(c.Request.Context(), id); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "thème désactivé"})
}
