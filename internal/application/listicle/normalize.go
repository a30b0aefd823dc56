package listicle

import (
	"encoding/json"
	"strings"
)

// 兜底解析使用的默认值，保证五个字段始终非空
const (
	defaultTitle        = "Generated Listicle"
	defaultIntroduction = "Introduction to the article."
	defaultMainContent  = "Content generation completed, but the response could not be structured."
	defaultConclusion   = "Thank you for reading."

	// fallbackTableOfContents 兜底目录：固定的三项通用 HTML 有序列表，不尝试推断真实结构
	fallbackTableOfContents = "<ol><li>Overview</li><li>Key Points</li><li>Summary</li></ol>"
)

// Normalize 将模型原始输出规整为固定的五字段结构
// 主路径：严格 JSON 解码；只有解码失败才走兜底，字段缺失不触发兜底
func Normalize(raw string) (Content, bool) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallbackParse(raw), true
	}

	obj, ok := v.(map[string]any)
	if !ok {
		// 合法 JSON 但不是对象：与原始行为一致，字段全部留空，不算解析失败
		return Content{}, false
	}

	return Content{
		Title:           stringField(obj, "title"),
		Introduction:    stringField(obj, "introduction"),
		TableOfContents: stringField(obj, "tableOfContents"),
		MainContent:     stringField(obj, "mainContent"),
		Conclusion:      stringField(obj, "conclusion"),
	}, false
}

// stringField 提取字符串字段，缺失或非字符串时返回空串
func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// fallbackParse 对非 JSON 文本做启发式切分
// 契约是"永远返回五个非空字符串"，不保证结构正确
func fallbackParse(raw string) Content {
	chunks := splitParagraphs(raw)

	content := Content{
		Title:           defaultTitle,
		Introduction:    defaultIntroduction,
		TableOfContents: fallbackTableOfContents,
		MainContent:     defaultMainContent,
		Conclusion:      defaultConclusion,
	}

	if len(chunks) > 0 {
		content.Title = chunks[0]
		content.Conclusion = chunks[len(chunks)-1]
	}
	if len(chunks) > 1 {
		content.Introduction = chunks[1]
	}
	if len(chunks) > 3 {
		content.MainContent = strings.Join(chunks[2:len(chunks)-1], "\n\n")
	}

	return content
}

// splitParagraphs 按空行边界切分为去除首尾空白的非空段落
func splitParagraphs(raw string) []string {
	parts := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n\n")
	chunks := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			chunks = append(chunks, p)
		}
	}
	return chunks
}
