package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zhtranslations "github.com/go-playground/validator/v10/translations/zh"

	apperrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

var (
	once       sync.Once
	setupErr   error
	translator ut.Translator
)

// Setup 配置 gin 默认的 validator 引擎：字段名取 json tag，错误信息翻译为中文
// 多次调用只生效一次
func Setup() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("gin 校验引擎不是 validator/v10")
			return
		}
		setupErr = Register(v)
	})
	return setupErr
}

// Register 在给定的 validator 上注册 tag 名称函数与中文翻译
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	zhLocale := zh.New()
	uni := ut.New(zhLocale, zhLocale)
	trans, _ := uni.GetTranslator("zh")

	if err := zhtranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return fmt.Errorf("注册校验翻译失败: %w", err)
	}
	registerTranslation(v, trans, "datetime", "{0}必须是 YYYY-MM-DD 格式的日期")
	registerTranslation(v, trans, "required", "{0}为必填字段")

	translator = trans
	return nil
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(
		tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fieldPath(fe))
			return s
		},
	)
}

// FromBindError 将 ShouldBindJSON/ShouldBindQuery 的错误转换为 ValidationError
func FromBindError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperrors.FieldError{
				Field: fieldPath(fe),
				Error: fe.Translate(translator),
			})
		}
		return apperrors.NewValidationError(nil, fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.FieldInvalid(typeErr.Field, fmt.Sprintf("类型错误，期望 %s", typeErr.Type.String()))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperrors.NewValidationError(fmt.Errorf("%w: 请求体不是合法的 JSON", apperrors.ErrValidation))
	}

	return apperrors.NewValidationError(fmt.Errorf("%w: 请求参数无效", apperrors.ErrValidation))
}

// fieldPath 去掉根结构体名，保留 json 路径，如 first_term_break.start
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
