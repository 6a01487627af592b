package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// fieldMessages 请求体用到的校验规则的中文文案，{0} 为字段名，{1} 为规则参数
var fieldMessages = map[string]string{
	"required": "{0}不能为空",
	"min":      "{0}长度不能少于{1}",
	"max":      "{0}长度不能超过{1}",
	"oneof":    "{0}必须是[{1}]中的一个",
	"gte":      "{0}必须大于或等于{1}",
}

// newValidator 字段名取 comment 标签，没有时取 json 名
func newValidator() (*validator.Validate, ut.Translator) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("comment"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		}
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	zhLocale := zh.New()
	trans, _ := ut.New(zhLocale, zhLocale).GetTranslator("zh")
	_ = zh_translations.RegisterDefaultTranslations(v, trans)

	for tag, msg := range fieldMessages {
		registerMessage(v, trans, tag, msg)
	}
	return v, trans
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, msg string) {
	_ = v.RegisterTranslation(tag, trans, func(t ut.Translator) error {
		return t.Add(tag, msg, true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		text, err := t.T(fe.Tag(), fe.Field(), fe.Param())
		if err != nil {
			return fe.Error()
		}
		return text
	})
}
