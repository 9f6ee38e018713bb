package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry 读取 access token 的过期时间
// 签名由存储端校验，这里只读取声明用于安排刷新；解析失败返回零值
func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
