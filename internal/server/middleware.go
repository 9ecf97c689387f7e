package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"assetdeck/internal/apperr"
	"assetdeck/internal/model"
)

// Context keys set by the identity middleware.
const (
	ctxOrgID  = "orgID"
	ctxUserID = "userID"
	ctxRole   = "role"
)

// Headers carrying caller identity. Authentication proper sits in front of
// this service; these headers are the trusted result of it.
const (
	headerOrgID  = "X-Org-ID"
	headerUserID = "X-User-ID"
)

// identity resolves the caller's organization, user, and role. A user that
// does not belong to the claimed organization is refused with the same
// shape as a missing record.
func (s *Server) identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, err1 := strconv.ParseUint(c.GetHeader(headerOrgID), 10, 32)
		userID, err2 := strconv.ParseUint(c.GetHeader(headerUserID), 10, 32)
		if err1 != nil || err2 != nil || orgID == 0 || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		var user model.User
		err := s.store.DB.WithContext(c.Request.Context()).
			Where("id = ? AND organization_id = ?", userID, orgID).
			First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if err != nil {
			s.fail(c, apperr.Internal("server.identity", err))
			c.Abort()
			return
		}

		c.Set(ctxOrgID, uint(orgID))
		c.Set(ctxUserID, uint(userID))
		c.Set(ctxRole, user.Role)
		c.Next()
	}
}

func orgOf(c *gin.Context) uint { return c.GetUint(ctxOrgID) }
func userOf(c *gin.Context) uint { return c.GetUint(ctxUserID) }
func roleOf(c *gin.Context) model.Role {
	if v, ok := c.Get(ctxRole); ok {
		if r, ok := v.(model.Role); ok {
			return r
		}
	}
	return model.RoleUser
}

// isAdmin reports whether the caller may see admin-only data.
func isAdmin(c *gin.Context) bool {
	return roleOf(c) == model.RoleAdmin
}

// canMutate reports whether the caller may run destructive intents.
// Self-service users are read-mostly; refusals are 404-shaped so the
// restricted surface is indistinguishable from an absent one.
func canMutate(c *gin.Context) bool {
	return roleOf(c) != model.RoleSelfService
}
