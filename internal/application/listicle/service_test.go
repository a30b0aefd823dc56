package listicle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "listicle-gen-api/pkg/errors"
)

// stubClient 测试用上游客户端，记录调用内容
type stubClient struct {
	calls        int
	gotAPIKey    string
	gotSystem    string
	gotUser      string
	responseText string
	err          error
}

func (s *stubClient) Complete(_ context.Context, apiKey, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	s.gotAPIKey = apiKey
	s.gotSystem = systemPrompt
	s.gotUser = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.responseText, nil
}

func TestServiceGenerateSuccess(t *testing.T) {
	client := &stubClient{
		responseText: `{"title":"t","introduction":"i","tableOfContents":"toc","mainContent":"m","conclusion":"c"}`,
	}
	svc := NewService(client)

	out, err := svc.Generate(context.Background(), GenerateInput{
		APIKey:     "sk-test",
		Idea:       "bond ladders",
		Audience:   "beginner",
		DataDriven: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "sk-test", client.gotAPIKey)
	assert.Contains(t, client.gotUser, "bond ladders")
	assert.Contains(t, client.gotUser, DataPlaceholder)
	assert.False(t, out.UsedFallback)
	assert.Equal(t, "t", out.Content.Title)
}

func TestServiceGenerateFallbackFlag(t *testing.T) {
	client := &stubClient{responseText: "Title\n\nIntro\n\nBody\n\nEnd"}
	svc := NewService(client)

	out, err := svc.Generate(context.Background(), GenerateInput{
		APIKey:   "sk-test",
		Idea:     "savings",
		Audience: "beginner",
	})

	require.NoError(t, err)
	assert.True(t, out.UsedFallback)
	assert.Equal(t, "Title", out.Content.Title)
}

func TestServiceGeneratePropagatesUpstreamError(t *testing.T) {
	client := &stubClient{err: apperrors.New(apperrors.CodeUpstreamRateLimit, "rate limit exceeded")}
	svc := NewService(client)

	out, err := svc.Generate(context.Background(), GenerateInput{
		APIKey:   "sk-test",
		Idea:     "savings",
		Audience: "beginner",
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, apperrors.CodeUpstreamRateLimit, apperrors.AsAppError(err).Code)
}

func TestServiceGenerateNoClient(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Generate(context.Background(), GenerateInput{})
	assert.Error(t, err)
}
