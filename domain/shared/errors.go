/*
Package shared - 领域层共享错误定义

设计原则:
1. 领域层定义哨兵错误(sentinel errors)，用于 errors.Is() 判断
2. DomainError 在创建时捕获堆栈，按需格式化
3. 领域错误不包含 HTTP 状态码等传输层概念

ErrDomainRule 标记"业务规则拒绝"：应用层在操作边界把它转换为失败的 Result，
其余错误原样向上传播。
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")

	ErrConflict = errors.New("conflict")

	// ErrInvalidInput 无效输入（参数或不变量校验失败）
	ErrInvalidInput = errors.New("invalid input")

	// ErrDomainRule 聚合拒绝了一次构造或修改
	ErrDomainRule = errors.New("domain rule violation")
)

// DomainError 携带业务上下文和发生点堆栈的结构化错误
type DomainError struct {
	// Err 底层哨兵错误
	Err error

	// Entity 发生错误的实体名称（如 "person"）
	Entity string

	Message string

	// Field 可选：发生错误的字段名
	Field string

	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack 按需格式化堆栈（只在打印日志时调用）
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// CaptureStack 捕获当前调用栈（导出供子领域包使用）
// skip: 跳过的帧数（通常为 3：Callers, CaptureStack, NewXxxError）
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack 过滤 runtime 内部帧，最多返回 10 帧
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

func NewNotFoundError(entity string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found",
		stack:   CaptureStack(3),
	}
}

func NewConflictError(entity, message string) error {
	return &DomainError{
		Err:     ErrConflict,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// IsDomainRuleViolation reports whether err is an expected business rejection
// raised by an aggregate or value object.
func IsDomainRuleViolation(err error) bool {
	return errors.Is(err, ErrDomainRule)
}

// Stacker 可提供堆栈的错误接口，API 层用它统一提取堆栈
type Stacker interface {
	Stack() []string
}
