package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_FieldsInMessage(t *testing.T) {
	err := NewValidationError(nil,
		FieldError{Field: "start_date", Error: "日期格式无效"},
		FieldError{Field: "weekly_hours", Error: "必须大于 0"},
	)

	want := "参数校验失败 (start_date: 日期格式无效; weekly_hours: 必须大于 0)"
	if err.Error() != want {
		t.Errorf("期望 %q，实际 %q", want, err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError 应可通过 errors.Is 匹配 ErrValidation")
	}
}

func TestAsValidationError_ThroughWrap(t *testing.T) {
	base := FieldInvalid("end_date", "不能为空")
	wrapped := fmt.Errorf("生成日历: %w", base)

	ve, ok := AsValidationError(wrapped)
	if !ok {
		t.Fatal("应能从包装错误中取出 ValidationError")
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "end_date" {
		t.Errorf("字段不符: %+v", ve.Fields)
	}
}

func TestWrap_Cause(t *testing.T) {
	root := errors.New("连接断开")
	err := Wrap(root, "删除周次失败")

	if Cause(err) != root {
		t.Error("Cause 应返回根因")
	}
	if Wrap(nil, "x") != nil {
		t.Error("Wrap(nil) 应返回 nil")
	}
}
