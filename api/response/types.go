/*
Package response - API 层统一响应处理

1. HTTP 状态码映射放在 API 层，不污染领域层和应用层
2. 内部错误统一返回 "internal server error"，真实错误只记录日志
3. 所有响应携带 RequestID 用于日志追踪

	成功: { success: true, data: {...}, code: 200, request_id: "..." }
	失败: { success: false, error: "ERROR_CODE", message: "...", errors: [...], code: 4xx/5xx, request_id: "..." }
*/
package response

import (
	apperrors "contactbook/pkg/errors"
)

// RequestIDKey 是 gin context 中保存请求 ID 的键。
const RequestIDKey = "request_id"

// Response 是统一响应结构。
type Response struct {
	Success   bool                   `json:"success"`
	Data      interface{}            `json:"data,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Code      int                    `json:"code"`
	Message   string                 `json:"message,omitempty"`
	Errors    []string               `json:"errors,omitempty"`
	Fields    []apperrors.FieldError `json:"fields,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}
