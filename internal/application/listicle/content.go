// Package listicle 提供清单体文章生成的核心业务逻辑
package listicle

// Content 固定的五字段文章结构
// 主路径不校验字段存在性，缺失字段保持零值原样返回
type Content struct {
	Title           string `json:"title"`
	Introduction    string `json:"introduction"`
	TableOfContents string `json:"tableOfContents"`
	MainContent     string `json:"mainContent"`
	Conclusion      string `json:"conclusion"`
}
