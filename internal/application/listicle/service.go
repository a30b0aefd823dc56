package listicle

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"listicle-gen-api/internal/infrastructure/llm"
	"listicle-gen-api/pkg/logger"
	"listicle-gen-api/pkg/metrics"
	"listicle-gen-api/pkg/tracer"
)

// GenerateInput 一次生成所需的全部输入
// APIKey 由调用方提供，仅在本次调用内传递给上游，不落日志
type GenerateInput struct {
	APIKey     string
	Idea       string
	Audience   string
	Context    string
	DataDriven bool
}

// GenerateOutput 生成结果
type GenerateOutput struct {
	Content      Content
	UsedFallback bool
}

// Service 编排 提示词构造 -> 上游调用 -> 结果规整
type Service struct {
	client llm.CompletionClient
}

// NewService 创建生成服务
func NewService(client llm.CompletionClient) *Service {
	return &Service{client: client}
}

// Generate 执行一次完整的文章生成
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	if s == nil || s.client == nil {
		return nil, fmt.Errorf("completion client not configured")
	}

	ctx, span := tracer.Start(ctx, "listicle.generate")
	defer span.End()

	start := time.Now()
	dataDriven := strconv.FormatBool(in.DataDriven)

	systemPrompt, userPrompt := BuildPrompts(in.Idea, in.Audience, in.Context, in.DataDriven)

	raw, err := s.client.Complete(ctx, in.APIKey, systemPrompt, userPrompt)
	if err != nil {
		metrics.GenerationTotal.WithLabelValues("error", dataDriven).Inc()
		return nil, err
	}

	content, usedFallback := Normalize(raw)
	if usedFallback {
		metrics.FallbackParseTotal.Inc()
		logger.Warn(ctx, "model output was not valid JSON, used fallback parsing",
			"idea", in.Idea,
		)
	}

	metrics.GenerationTotal.WithLabelValues("ok", dataDriven).Inc()
	metrics.GenerationDuration.WithLabelValues(dataDriven).Observe(time.Since(start).Seconds())
	logger.Info(ctx, "listicle generated",
		"idea", in.Idea,
		"audience", in.Audience,
		"data_driven", in.DataDriven,
		"used_fallback", usedFallback,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &GenerateOutput{
		Content:      content,
		UsedFallback: usedFallback,
	}, nil
}
