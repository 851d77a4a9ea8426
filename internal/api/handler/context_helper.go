package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
	"github.com/bagerxx/OgretmenPlan/pkg/response"
	"github.com/bagerxx/OgretmenPlan/pkg/validate"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, "user_id")
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	return mustGetString(c, "role")
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// mustParseYear 解析路径参数 :year，失败时写入 400
func mustParseYear(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		response.ValidationFailed(c, 10001, &apperrors.ValidationError{
			Err:    apperrors.ErrValidation,
			Fields: []apperrors.FieldError{{Field: "year", Error: "学年必须是 2000-2100 之间的整数"}},
		})
		return 0, false
	}
	return year, true
}

// bindFailed 将绑定错误写为字段级 400 响应
func bindFailed(c *gin.Context, err error) {
	if ve, ok := apperrors.AsValidationError(validate.FromBindError(err)); ok {
		response.ValidationFailed(c, 10001, ve)
		return
	}
	response.BadRequest(c, 10001, "参数校验失败")
}

// validationFailed 业务层返回 ValidationError 时写入 400；返回 false 表示不是校验错误
func validationFailed(c *gin.Context, err error) bool {
	ve, ok := apperrors.AsValidationError(err)
	if !ok {
		return false
	}
	response.ValidationFailed(c, 10001, ve)
	return true
}
