package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/pkg/response"
)

// MustGetUserID extracts the authenticated user id injected by the JWT
// middleware. On failure it writes a 401 and returns false; the caller
// should return immediately.
func MustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "Non authentifié")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "Non authentifié")
		return 0, false
	}
	return id, true
}

// MustGetRole extracts the authenticated role.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "Non authentifié")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "Non authentifié")
		return "", false
	}
	return s, true
}

// parseIDParam parses the :id path parameter. On failure it writes a 400
// with the module's validation code and returns false.
func parseIDParam(c *gin.Context, code int) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, code, "Identifiant invalide")
		return 0, false
	}
	return uint(id), true
}
