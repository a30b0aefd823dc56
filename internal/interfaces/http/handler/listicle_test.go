package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listicle-gen-api/internal/application/listicle"
	"listicle-gen-api/internal/interfaces/http/dto"
	apperrors "listicle-gen-api/pkg/errors"
)

// stubClient 测试用上游客户端，计数用于验证校验失败时不触发上游调用
type stubClient struct {
	calls        int
	responseText string
	err          error
}

func (s *stubClient) Complete(_ context.Context, _, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.responseText, nil
}

func setupRouter(client *stubClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewListicleHandler(listicle.NewService(client))

	r := gin.New()
	r.POST("/api/generate-listicle", h.Generate)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-listicle", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing apiKey", `{"idea":"i","audience":"a"}`},
		{"missing idea", `{"apiKey":"k","audience":"a"}`},
		{"missing audience", `{"apiKey":"k","idea":"i"}`},
		{"blank apiKey", `{"apiKey":"   ","idea":"i","audience":"a"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{responseText: "{}"}
			r := setupRouter(client)

			w := postJSON(t, r, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			// 校验失败必须先于任何上游调用
			assert.Equal(t, 0, client.calls)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGenerateMalformedBody(t *testing.T) {
	client := &stubClient{}
	r := setupRouter(client)

	w := postJSON(t, r, `{not json`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, client.calls)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Error)
	assert.NotEmpty(t, resp.Details)
}

func TestGenerateUpstreamErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"auth", apperrors.New(apperrors.CodeUpstreamAuth, "invalid API key"), http.StatusUnauthorized},
		{"rate limit", apperrors.New(apperrors.CodeUpstreamRateLimit, "rate limit exceeded"), http.StatusTooManyRequests},
		{"bad request", apperrors.New(apperrors.CodeUpstreamBadRequest, "invalid request to AI service"), http.StatusBadRequest},
		{"unclassified", apperrors.New(apperrors.CodeUpstreamError, "model overloaded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{err: tt.err}
			r := setupRouter(client)

			w := postJSON(t, r, `{"apiKey":"k","idea":"i","audience":"a"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, 1, client.calls)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGenerateSuccess(t *testing.T) {
	client := &stubClient{
		responseText: `{"title":"t","introduction":"i","tableOfContents":"toc","mainContent":"m","conclusion":"c"}`,
	}
	r := setupRouter(client)

	w := postJSON(t, r, `{"apiKey":"k","idea":"i","audience":"a","isDataDriven":true}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.GenerateListicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.IsDataDriven)
	assert.Empty(t, resp.Warning)
	assert.Equal(t, "t", resp.Data.Title)
	assert.Equal(t, "c", resp.Data.Conclusion)
}

func TestGenerateSuccessWithFallbackWarning(t *testing.T) {
	client := &stubClient{responseText: "Title\n\nIntro\n\nBody\n\nEnd"}
	r := setupRouter(client)

	w := postJSON(t, r, `{"apiKey":"k","idea":"i","audience":"a"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.GenerateListicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.IsDataDriven)
	assert.Equal(t, fallbackWarning, resp.Warning)
	assert.Equal(t, "Title", resp.Data.Title)
}
