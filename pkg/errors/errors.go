package errors

import (
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// ErrOptimisticLock 乐观锁冲突：记录已被其他操作修改
var ErrOptimisticLock = errors.New("数据已被其他操作修改，请刷新后重试")

// ErrValidation 输入校验失败的通用错误
var ErrValidation = errors.New("参数校验失败")

// FieldError 单个字段的校验错误
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError 输入校验错误，携带出错字段列表
type ValidationError struct {
	Err    error
	Fields []FieldError
}

// NewValidationError 创建 ValidationError；err 为空时使用 ErrValidation
func NewValidationError(err error, fields ...FieldError) error {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Err: err, Fields: fields}
}

// FieldInvalid 单字段校验错误的快捷方式
func FieldInvalid(field, message string) error {
	return NewValidationError(nil, FieldError{Field: field, Error: message})
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return ""
	}
	if len(e.Fields) == 0 {
		return e.Err.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Error)
	}
	return e.Err.Error() + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AsValidationError 从错误链中取出 ValidationError
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Wrap 为底层错误附加上下文；err 为 nil 时返回 nil
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Cause 返回被 Wrap 包装的根因
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
