package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Athlon05/Balanacea-app/session"
)

const (
	contextUserIDKey      = "session_user_id"
	contextAccessTokenKey = "session_access_token"
)

// SessionRequired 会话门中间件
// 未登录时拦截全部记录操作。这只是客户端侧的便利拦截，
// 行级归属的最终裁决在存储端
func SessionRequired(gate *session.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := gate.Current()
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "请先登录",
			})
			c.Abort()
			return
		}
		c.Set(contextUserIDKey, sess.User.ID)
		c.Set(contextAccessTokenKey, sess.AccessToken)
		c.Next()
	}
}

// GetCurrentUserID 从上下文获取当前用户 id
func GetCurrentUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(contextUserIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetAccessToken 从上下文获取当前会话的 access token
func GetAccessToken(c *gin.Context) string {
	if v, ok := c.Get(contextAccessTokenKey); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
