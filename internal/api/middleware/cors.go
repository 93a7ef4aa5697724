package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	corsMethods       = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsHeaders       = "Origin, X-Requested-With, Content-Type, Accept, Authorization, " + TraceHeader
	corsExposeHeaders = "Content-Length, Content-Type, " + TraceHeader
)

// CORSMiddleware 处理跨域请求，allowedOrigins 为空时允许任意来源
func CORSMiddleware(allowedOrigins ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Vary", "Origin")
		}

		_, ok := allowed[origin]
		if origin != "" && (len(allowed) == 0 || ok) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", corsMethods)
			c.Header("Access-Control-Allow-Headers", corsHeaders)
			c.Header("Access-Control-Expose-Headers", corsExposeHeaders)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Max-Age", "600")
		}

		// 处理浏览器的 OPTIONS 预检请求
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
