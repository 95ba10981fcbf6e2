package response

import (
	stdErrors "errors"
	"net/http"
	"runtime"

	"contactbook/application/result"
	"contactbook/domain/shared"
	"contactbook/pkg/errors"
	"contactbook/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var httpStatusMap = map[errors.ErrorCode]int{
	errors.CodeInternal:       http.StatusInternalServerError,
	errors.CodeBadRequest:     http.StatusBadRequest,
	errors.CodeNotFound:       http.StatusNotFound,
	errors.CodeConflict:       http.StatusConflict,
	errors.CodeValidation:     http.StatusBadRequest,
	errors.CodeDomainRule:     http.StatusBadRequest,
	errors.CodeTooManyRequest: http.StatusTooManyRequests,
}

func mapErrorCodeToHTTPStatus(code errors.ErrorCode) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

func GetRequestID(c *gin.Context) string {
	return getRequestID(c)
}

func captureStack(skip int) []string {
	var pcs [16]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		frame, more := frames.Next()
		if frame.Function != "" {
			stack = append(stack, frame.Function)
		}
		if !more {
			break
		}
	}
	return stack
}

// HandleError 处理参数绑定等框架层错误。
func HandleError(c *gin.Context, err error, message string, code int) {
	requestID := getRequestID(c)

	logger.Warn(message,
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", code),
		zap.Error(err))

	c.JSON(code, &Response{
		Success:   false,
		Error:     string(errors.CodeBadRequest),
		Message:   message,
		Code:      code,
		RequestID: requestID,
	})
}

// HandleAppError 按应用错误码映射 HTTP 状态码。
// 内部错误只记录日志（含堆栈），客户端只看到 "internal server error"。
func HandleAppError(c *gin.Context, err error) {
	requestID := getRequestID(c)
	appErr := errors.FromDomainError(err)
	httpStatus := mapErrorCodeToHTTPStatus(appErr.Code)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("http_status", httpStatus),
	}

	userMessage := appErr.Message
	if httpStatus >= http.StatusInternalServerError {
		userMessage = "internal server error"
		fields = append(fields, zap.Strings("stack", extractStack(err)), zap.Error(err))
		logger.Error(appErr.Message, fields...)
	} else {
		logger.Warn(appErr.Message, fields...)
	}

	c.JSON(httpStatus, &Response{
		Success:   false,
		Error:     string(appErr.Code),
		Message:   userMessage,
		Fields:    appErr.Fields,
		Code:      httpStatus,
		RequestID: requestID,
	})
}

// HandleFailure writes a failed operation result: 404 for a missing person,
// 400 for everything else.
func HandleFailure(c *gin.Context, r result.Result) {
	httpStatus, code := http.StatusBadRequest, errors.CodeDomainRule
	if r.IsNotFound() {
		httpStatus, code = http.StatusNotFound, errors.CodeNotFound
	}

	c.JSON(httpStatus, &Response{
		Success:   false,
		Error:     string(code),
		Message:   r.FailureText(),
		Errors:    r.Errors(),
		Code:      httpStatus,
		RequestID: getRequestID(c),
	})
}

// HandleNotFound 查询类接口找不到资源时使用
func HandleNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Success:   false,
		Error:     string(errors.CodeNotFound),
		Message:   message,
		Code:      http.StatusNotFound,
		RequestID: getRequestID(c),
	})
}

func extractStack(err error) []string {
	var stacker shared.Stacker
	if stdErrors.As(err, &stacker) {
		if stack := stacker.Stack(); len(stack) > 0 {
			return stack
		}
	}
	return captureStack(4)
}
