package listicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValidJSON(t *testing.T) {
	raw := `{
		"title": "5 ETF Tips",
		"introduction": "intro text",
		"tableOfContents": "<ol><li>One</li></ol>",
		"mainContent": "body text",
		"conclusion": "closing text"
	}`

	content, usedFallback := Normalize(raw)

	require.False(t, usedFallback)
	assert.Equal(t, Content{
		Title:           "5 ETF Tips",
		Introduction:    "intro text",
		TableOfContents: "<ol><li>One</li></ol>",
		MainContent:     "body text",
		Conclusion:      "closing text",
	}, content)
}

func TestNormalizePartialJSONDoesNotFallback(t *testing.T) {
	// 解码成功即抑制兜底，字段缺失原样保留为空
	content, usedFallback := Normalize(`{"title": "only a title"}`)

	assert.False(t, usedFallback)
	assert.Equal(t, "only a title", content.Title)
	assert.Empty(t, content.Introduction)
	assert.Empty(t, content.MainContent)
}

func TestNormalizeNonObjectJSON(t *testing.T) {
	// 合法 JSON 但不是对象：不触发兜底，全部字段为空
	content, usedFallback := Normalize(`42`)

	assert.False(t, usedFallback)
	assert.Equal(t, Content{}, content)
}

func TestNormalizeNonStringFields(t *testing.T) {
	content, usedFallback := Normalize(`{"title": 7, "conclusion": "done"}`)

	assert.False(t, usedFallback)
	assert.Empty(t, content.Title)
	assert.Equal(t, "done", content.Conclusion)
}

func TestNormalizeFallbackDeterminism(t *testing.T) {
	content, usedFallback := Normalize("T\n\nI\n\nM1\n\nM2\n\nC")

	require.True(t, usedFallback)
	assert.Equal(t, "T", content.Title)
	assert.Equal(t, "I", content.Introduction)
	assert.Equal(t, "M1\n\nM2", content.MainContent)
	assert.Equal(t, "C", content.Conclusion)
	assert.Equal(t, fallbackTableOfContents, content.TableOfContents)
}

func TestNormalizeFallbackEmptyInput(t *testing.T) {
	content, usedFallback := Normalize("")

	require.True(t, usedFallback)
	assert.Equal(t, defaultTitle, content.Title)
	assert.Equal(t, defaultIntroduction, content.Introduction)
	assert.Equal(t, defaultMainContent, content.MainContent)
	assert.Equal(t, defaultConclusion, content.Conclusion)
	assert.Equal(t, fallbackTableOfContents, content.TableOfContents)
}

func TestNormalizeFallbackShortText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Content
	}{
		{
			name: "single paragraph",
			raw:  "only one",
			want: Content{
				Title:           "only one",
				Introduction:    defaultIntroduction,
				TableOfContents: fallbackTableOfContents,
				MainContent:     defaultMainContent,
				Conclusion:      "only one",
			},
		},
		{
			name: "two paragraphs",
			raw:  "first\n\nsecond",
			want: Content{
				Title:           "first",
				Introduction:    "second",
				TableOfContents: fallbackTableOfContents,
				MainContent:     defaultMainContent,
				Conclusion:      "second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, usedFallback := Normalize(tt.raw)
			require.True(t, usedFallback)
			assert.Equal(t, tt.want, content)
		})
	}
}

func TestNormalizeFallbackIgnoresExtraBlankLines(t *testing.T) {
	content, usedFallback := Normalize("T\r\n\r\nI\n\n\n\nM\n\nC")

	require.True(t, usedFallback)
	assert.Equal(t, "T", content.Title)
	assert.Equal(t, "I", content.Introduction)
	assert.Equal(t, "M", content.MainContent)
	assert.Equal(t, "C", content.Conclusion)
}

func TestNormalizeFallbackAlwaysNonEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "one", "a\n\nb", "not { json"} {
		content, usedFallback := Normalize(raw)
		require.True(t, usedFallback, "raw=%q", raw)
		assert.NotEmpty(t, content.Title)
		assert.NotEmpty(t, content.Introduction)
		assert.NotEmpty(t, content.TableOfContents)
		assert.NotEmpty(t, content.MainContent)
		assert.NotEmpty(t, content.Conclusion)
	}
}
