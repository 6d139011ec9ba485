package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/pkg/jwt"
	"faculty-schedule/backend/pkg/redis"
	"faculty-schedule/backend/pkg/response"
)

// JWTAuth extracts and validates the access token from the
// Authorization: Bearer header, checks the revocation blacklist when Redis
// is available, and injects the identity into the context.
func JWTAuth(jwtMgr *jwt.Manager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "En-tête d'authentification manquant")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "En-tête d'authentification invalide")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "Token invalide ou expiré")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "Type de token invalide")
			c.Abort()
			return
		}

		if redisClient != nil {
			revoked, err := redisClient.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "Token révoqué")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth allows the request through only when the authenticated role is
// one of allowedRoles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "Non authentifié")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10009, "Accès refusé")
		c.Abort()
	}
}
