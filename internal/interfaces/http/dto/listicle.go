// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"listicle-gen-api/internal/application/listicle"
)

// GenerateListicleRequest 生成请求
// apiKey/idea/audience 为必填项，由处理器在调用上游前校验
type GenerateListicleRequest struct {
	APIKey       string `json:"apiKey"`
	Idea         string `json:"idea"`
	Audience     string `json:"audience"`
	Context      string `json:"context,omitempty"`
	IsDataDriven bool   `json:"isDataDriven"`
}

// GenerateListicleResponse 生成成功响应
type GenerateListicleResponse struct {
	Success      bool             `json:"success"`
	Data         listicle.Content `json:"data"`
	IsDataDriven bool             `json:"isDataDriven"`
	Warning      string           `json:"warning,omitempty"`
}
