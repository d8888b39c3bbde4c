package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MarioCasanovacf/chambometro/internal/config"
	"github.com/MarioCasanovacf/chambometro/internal/middleware"
	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
)

// AuthHandler mints JWTs from the configured bootstrap keys. The admin key
// yields the admin role, the viewer key the viewer role.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type tokenRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
	Name      string `json:"name"`
}

// Token POST /auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "access_key is required")
		return
	}

	var role string
	switch {
	case h.cfg.Auth.AdminKey != "" && req.AccessKey == h.cfg.Auth.AdminKey:
		role = middleware.RoleAdmin
	case h.cfg.Auth.ViewerKey != "" && req.AccessKey == h.cfg.Auth.ViewerKey:
		role = middleware.RoleViewer
	default:
		Error(c, 40100, "Invalid access key")
		return
	}

	name := req.Name
	if name == "" {
		name = role
	}
	now := time.Now()
	claims := middleware.JWTClaims{
		UserID: entity.NewID(),
		Name:   name,
		Roles:  []string{role},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    h.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.JWT.AccessTokenExpire)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWT.Secret))
	if err != nil {
		InternalError(c, "failed to sign token")
		return
	}

	Success(c, gin.H{
		"token":      signed,
		"role":       role,
		"expires_at": claims.ExpiresAt.Time,
	})
}
