package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const (
	ContextActor    = "actor"
	ContextUserRole = "userRole"

	anonymousActor = "anonymous"
)

// AuthMiddleware verifies an HS256 bearer token and stores its subject as the
// request actor. With AuthDisabled every request runs as "anonymous".
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AuthDisabled {
			c.Set(ContextActor, anonymousActor)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		actor := subject(claims)
		if actor == "" {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextActor, actor)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// subject accepts both string and numeric "sub" claims.
func subject(claims jwt.MapClaims) string {
	switch v := claims["sub"].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return ""
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code)
}

// Actor returns the authenticated subject for audit records.
func Actor(c *gin.Context) string {
	if v, ok := c.Get(ContextActor); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return anonymousActor
}
