// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "listicle-gen-api/pkg/errors"
)

// ErrorResponse 错误响应结构
// details 仅在 5xx 时填充，4xx 只返回面向用户的错误文案
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// Error 按 AppError 的状态码映射返回错误响应
func Error(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)

	body := ErrorResponse{Error: appErr.Message}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		body.Details = appErr.Detail
		if body.Details == "" && appErr.Err != nil {
			body.Details = appErr.Err.Error()
		}
	}

	c.JSON(appErr.HTTPStatus, body)
}

// InternalError 返回 500 兜底错误
func InternalError(c *gin.Context, details string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal server error",
		Details: details,
	})
}
