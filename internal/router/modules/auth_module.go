package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarwaraminy/hostapi/internal/container"
	handlers "github.com/sarwaraminy/hostapi/internal/interface/http"
	"github.com/sarwaraminy/hostapi/internal/interface/middleware"
	"github.com/sarwaraminy/hostapi/pkg/helpers"
)

// AuthModule wires the credential endpoints.
// Public: POST /login, POST /signup (both IP rate limited).
// Protected: GET /me behind the bearer guard.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	var allow middleware.AllowFunc
	if cfg.Env == "development" {
		allow = middleware.AllowPrivateIP()
	}
	loginLimiter := middleware.RateLimit(container.GetRedis(), cfg.LoginRateLimit, time.Minute, middleware.KeyByIPAndPath(), allow)
	signupLimiter := middleware.RateLimit(container.GetRedis(), cfg.SignupRateLimit, time.Minute, middleware.KeyByIPAndPath(), allow)

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/signup", signupLimiter, m.Handler.Signup)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.JWT))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
