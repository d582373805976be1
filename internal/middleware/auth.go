package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"
	"github.com/testmanship/exercise-service/internal/config"
	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
)

// Authenticator validates Casdoor-issued JWTs and mirrors the caller
// into the local users table.
type Authenticator struct {
	client *casdoorsdk.Client
	users  repositories.UserRepository
	logger *slog.Logger
}

func NewAuthenticator(cfg *config.Config, users repositories.UserRepository, logger *slog.Logger) *Authenticator {
	client := casdoorsdk.NewClient(
		cfg.CasdoorEndpoint,
		cfg.CasdoorClientID,
		cfg.CasdoorClientSecret,
		cfg.CasdoorCertificate,
		cfg.CasdoorOrganization,
		cfg.CasdoorApplication,
	)
	return &Authenticator{
		client: client,
		users:  users,
		logger: logger,
	}
}

// RequireUser rejects requests without a valid bearer token and puts the
// caller's identity into the gin context under "user_id".
func (a *Authenticator) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Missing bearer token",
			})
			return
		}

		claims, err := a.client.ParseJwtToken(token)
		if err != nil {
			a.logger.Warn("Token validation failed",
				"path", c.Request.URL.Path, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set("user_id", claims.User.Id)
		c.Set("user_name", claims.User.DisplayName)
		c.Set("user_email", claims.User.Email)

		a.mirrorUser(c, &claims.User)

		c.Next()
	}
}

// mirrorUser keeps a local copy of the identity so joins against
// attempts and challenges never need to call the identity provider.
// Failures are logged, not surfaced: the token already proved identity.
func (a *Authenticator) mirrorUser(c *gin.Context, u *casdoorsdk.User) {
	now := time.Now()
	user := &models.User{
		ID:          u.Id,
		FullName:    u.DisplayName,
		Email:       u.Email,
		IsActive:    !u.IsForbidden,
		LastLoginAt: &now,
	}
	if u.Avatar != "" {
		user.AvatarURL = &u.Avatar
	}

	if err := a.users.Upsert(c.Request.Context(), user); err != nil {
		a.logger.Warn("Failed to mirror user", "user_id", u.Id, "error", err)
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
