// Package llm 提供上游 chat-completion API 的客户端
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"listicle-gen-api/internal/config"
	apperrors "listicle-gen-api/pkg/errors"
	"listicle-gen-api/pkg/metrics"
)

// CompletionClient 单次非流式补全调用
// 凭证随每次调用传入，实现方不得持久化或记录
type CompletionClient interface {
	Complete(ctx context.Context, apiKey, systemPrompt, userPrompt string) (string, error)
}

// OpenAIClient OpenAI 兼容接口的 HTTP 客户端
// 本身不持有凭证，可跨请求复用
type OpenAIClient struct {
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// NewOpenAIClient 创建上游客户端
func NewOpenAIClient(cfg config.LLMConfig) *OpenAIClient {
	return &OpenAIClient{
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// chatRequest chat-completion 请求体
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse chat-completion 响应体
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete 发送一次非流式补全请求，返回模型输出的原始文本
func (c *OpenAIClient) Complete(ctx context.Context, apiKey, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()
	text, err := c.complete(ctx, apiKey, systemPrompt, userPrompt)

	status := "ok"
	if err != nil {
		status = string(apperrors.AsAppError(err).Code)
	}
	metrics.LLMCallTotal.WithLabelValues(c.model, status).Inc()
	metrics.LLMCallDuration.WithLabelValues(c.model).Observe(time.Since(start).Seconds())

	return text, err
}

func (c *OpenAIClient) complete(ctx context.Context, apiKey, systemPrompt, userPrompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternalError, "failed to encode upstream request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternalError, "failed to create upstream request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeUpstreamError, "AI service unreachable")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeUpstreamError, "failed to read upstream response")
	}

	// 上游状态码按枚举逐一分类，驱动面向用户的错误文案
	switch resp.StatusCode {
	case http.StatusOK:
		// 继续解析
	case http.StatusUnauthorized:
		return "", apperrors.New(apperrors.CodeUpstreamAuth, "invalid API key")
	case http.StatusTooManyRequests:
		return "", apperrors.New(apperrors.CodeUpstreamRateLimit, "rate limit exceeded, please try again later")
	case http.StatusBadRequest:
		return "", apperrors.New(apperrors.CodeUpstreamBadRequest, "invalid request to AI service").
			WithDetail(upstreamMessage(respBody))
	default:
		return "", apperrors.New(apperrors.CodeUpstreamError, upstreamMessage(respBody)).
			WithDetail("upstream status " + strconv.Itoa(resp.StatusCode))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeUpstreamError, "failed to decode upstream response")
	}
	if len(parsed.Choices) == 0 {
		return "", apperrors.New(apperrors.CodeUpstreamError, "empty response from model")
	}

	return parsed.Choices[0].Message.Content, nil
}

// upstreamMessage 提取上游错误信息，解析失败时退回原始文本
func upstreamMessage(body []byte) string {
	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	if len(body) > 0 {
		return fmt.Sprintf("AI service error: %s", bytes.TrimSpace(body))
	}
	return "AI service error"
}
