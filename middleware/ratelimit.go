package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// AuthRateLimit 认证接口限流中间件
// 每 IP 在 window 内最多 maxAttempts 次尝试，超过返回 429
func AuthRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		attempts = make(map[string][]time.Time)
	)

	// 定期清理窗口外的数据
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			cutoff := time.Now().Add(-window)
			for ip, ts := range attempts {
				kept := ts[:0]
				for _, t := range ts {
					if t.After(cutoff) {
						kept = append(kept, t)
					}
				}
				if len(kept) == 0 {
					delete(attempts, ip)
				} else {
					attempts[ip] = kept
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()
		cutoff := now.Add(-window)

		mu.Lock()
		kept := attempts[ip][:0]
		for _, t := range attempts[ip] {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		if len(kept) >= maxAttempts {
			attempts[ip] = kept
			mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "尝试过于频繁，请稍后再试",
			})
			c.Abort()
			return
		}
		attempts[ip] = append(kept, now)
		mu.Unlock()

		c.Next()
	}
}
