package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sarwaraminy/hostapi/internal/application"
	"github.com/sarwaraminy/hostapi/internal/interface/middleware"
	"github.com/sarwaraminy/hostapi/pkg/response"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// signupRequest keeps the wire field name passwordHash for compatibility
// with existing clients, but the value arrives as the raw password and is
// hashed server-side.
type signupRequest struct {
	Email        string `json:"email" binding:"required"`
	PasswordHash string `json:"passwordHash" binding:"required"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "All fields are required")
		return
	}
	res, err := h.Svc.Signup(c.Request.Context(), req.Email, req.PasswordHash, req.FirstName, req.LastName)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": res.Token, "user": res.User})
}

// Me handles GET /me (bearer-token protected).
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	user, err := h.Svc.UserByID(c.Request.Context(), uid)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
