package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/model"
)

// ContextSessionKey is where the gate middleware stores the resolved
// session for downstream handlers.
const ContextSessionKey = "session"

// SessionFrom returns the request's session, or nil for anonymous.
func SessionFrom(c *gin.Context) *model.Session {
	v, ok := c.Get(ContextSessionKey)
	if !ok {
		return nil
	}
	sess, ok := v.(*model.Session)
	if !ok {
		return nil
	}
	return sess
}
