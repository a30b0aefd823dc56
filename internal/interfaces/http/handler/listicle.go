// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"listicle-gen-api/internal/application/listicle"
	"listicle-gen-api/internal/interfaces/http/dto"
	"listicle-gen-api/pkg/logger"
)

// fallbackWarning 兜底解析生效时附加在成功响应上的提示
const fallbackWarning = "AI response was not valid JSON; content was reconstructed from plain text"

// ListicleHandler 文章生成接口
type ListicleHandler struct {
	svc *listicle.Service
}

// NewListicleHandler 创建文章生成处理器
func NewListicleHandler(svc *listicle.Service) *ListicleHandler {
	return &ListicleHandler{svc: svc}
}

// Generate 生成清单体文章
// 流程：校验 -> 构造提示词 -> 调用上游 -> 规整结果 -> 响应
// @Summary 生成清单体文章
// @Description 根据内容简报调用上游 LLM 生成五字段结构的文章
// @Tags Listicle
// @Accept json
// @Produce json
// @Param body body dto.GenerateListicleRequest true "生成请求"
// @Success 200 {object} dto.GenerateListicleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/generate-listicle [post]
func (h *ListicleHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateListicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 请求体无法解析属于未预期失败，走兜底 500 语义
		dto.InternalError(c, err.Error())
		return
	}

	// 必填项校验先于一切上游调用
	if strings.TrimSpace(req.APIKey) == "" || strings.TrimSpace(req.Idea) == "" || strings.TrimSpace(req.Audience) == "" {
		dto.BadRequest(c, "apiKey, idea and audience are required")
		return
	}

	out, err := h.svc.Generate(ctx, listicle.GenerateInput{
		APIKey:     req.APIKey,
		Idea:       req.Idea,
		Audience:   req.Audience,
		Context:    req.Context,
		DataDriven: req.IsDataDriven,
	})
	if err != nil {
		logger.Error(ctx, "listicle generation failed", err,
			"idea", req.Idea,
		)
		dto.Error(c, err)
		return
	}

	resp := dto.GenerateListicleResponse{
		Success:      true,
		Data:         out.Content,
		IsDataDriven: req.IsDataDriven,
	}
	if out.UsedFallback {
		resp.Warning = fallbackWarning
	}

	c.JSON(http.StatusOK, resp)
}
