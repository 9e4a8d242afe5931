package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizarena/internal/auth"
	"quizarena/internal/logger"
	"quizarena/internal/middleware"
	"quizarena/internal/service"
)

type AuthHandler struct {
	Users *service.UserService
	JWT   *auth.JWTService
	Log   *logger.Logger
}

func NewAuthHandler(users *service.UserService, jwtService *auth.JWTService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{Users: users, JWT: jwtService, Log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}
	user, err := h.Users.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	if err := h.setSessionCookie(c, user.ID); err != nil {
		respondError(c, h.Log, err)
		return
	}
	h.Log.WithUserID(user.ID).Info("user registered")
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}
	user, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	if err := h.setSessionCookie(c, user.ID); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "déconnecté"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.Users.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, userID int) error {
	user, err := h.Users.Profile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	token, err := h.JWT.Issue(user)
	if err != nil {
		return err
	}
	c.SetCookie(auth.CookieName, token, int(h.JWT.TTL().Seconds()), "/", "", false, true)
	return nil
}

// ListUsers backs the admin user listing.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
