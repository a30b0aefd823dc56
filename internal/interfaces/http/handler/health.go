// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康与连通性探针
type HealthHandler struct{}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RootResponse 根路径探针响应
type RootResponse struct {
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Endpoints []string `json:"endpoints"`
}

// TestResponse 连通性探针响应
type TestResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse 存活探针响应
type HealthResponse struct {
	Status string `json:"status"`
}

// Root 根路径探针，列出可用端点
// @Summary 服务信息
// @Tags System
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message:   "Listicle Generator API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Endpoints: []string{
			"GET /",
			"GET /api/test",
			"POST /api/generate-listicle",
		},
	})
}

// APITest 跨域连通性探针
// @Summary 连通性检查
// @Tags System
// @Produce json
// @Success 200 {object} TestResponse
// @Router /api/test [get]
func (h *HealthHandler) APITest(c *gin.Context) {
	c.JSON(http.StatusOK, TestResponse{
		Message:   "API connection successful",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Health 存活检查接口
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}
