package listicle

import (
	"fmt"
	"strings"
)

// DataPlaceholder 数据占位符。数据驱动型文章中所有实时数据以它占位，不允许模型编造数字
const DataPlaceholder = "[INSERT CURRENT DATA TABLE]"

// systemPromptTemplate 固定的系统提示词，要求模型严格返回五字段 JSON
const systemPromptTemplate = `You are an expert financial content writer specializing in listicle-style articles.

Respond ONLY with a valid JSON object containing exactly these five fields:
{
  "title": "the article title",
  "introduction": "an introduction of approximately 100 words",
  "tableOfContents": "an HTML ordered list (<ol><li>...</li></ol>) of the article sections",
  "mainContent": "the full body of the article with all list sections",
  "conclusion": "a conclusion of approximately 50 words"
}

Do not wrap the JSON in markdown code fences or add any text outside the JSON object.
Write in a tone and depth appropriate for a %s audience.`

// dataDrivenDirective 数据驱动型文章的用户提示词附加要求
const dataDrivenDirective = `This article depends on current market data. Write the structural and educational content in full, but wherever live data, prices, rates or statistics would appear, insert the literal placeholder ` + DataPlaceholder + ` instead. Never invent or estimate real figures.`

// evergreenDirective 长青型文章的用户提示词附加要求
const evergreenDirective = `This is evergreen content. Write complete, fully detailed content with no placeholders of any kind.`

// BuildPrompts 根据内容简报构造 (系统提示词, 用户提示词)
// 纯函数：相同输入永远产生相同输出，无任何副作用
func BuildPrompts(idea, audience, contextNote string, dataDriven bool) (systemPrompt, userPrompt string) {
	systemPrompt = fmt.Sprintf(systemPromptTemplate, audience)

	var b strings.Builder
	fmt.Fprintf(&b, "Write a listicle article about: %s\n", idea)
	fmt.Fprintf(&b, "Target audience: %s\n", audience)
	if dataDriven {
		b.WriteString(dataDrivenDirective)
	} else {
		b.WriteString(evergreenDirective)
	}
	if note := strings.TrimSpace(contextNote); note != "" {
		// 附加上下文仅在非空时追加，避免出现空指令行
		fmt.Fprintf(&b, "\nAdditional context: %s", note)
	}

	return systemPrompt, b.String()
}
