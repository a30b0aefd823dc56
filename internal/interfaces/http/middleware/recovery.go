// Package middleware 提供 HTTP 中间件
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"listicle-gen-api/internal/interfaces/http/dto"
	"listicle-gen-api/pkg/logger"
)

// Recovery Panic 恢复中间件，未预期异常一律兜底为通用 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// 获取堆栈信息
				stack := string(debug.Stack())

				logger.Error(c.Request.Context(), "panic recovered",
					fmt.Errorf("%v", err),
					"stack", stack,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				// 只透出错误自身的文案，不泄露内部细节
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   "Internal server error",
					Details: fmt.Sprintf("%v", err),
				})
			}
		}()

		c.Next()
	}
}
