package utils

import (
	"errors"
	"strings"
	"sync"

	errorc "storyhub/pkg/core/err"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	translator   ut.Translator
	validateOnce sync.Once
)

func getValidator() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate, translator = newValidator()
	})
	return validate, translator
}

// ValidateRequest 校验请求体，失败时返回 Validation 错误，消息为各字段中文描述
func ValidateRequest(data interface{}) error {
	v, trans := getValidator()
	err := v.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// 传入的不是结构体
		return errorc.New("请求参数无效", err).ValidWithCtx()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(trans))
	}
	return errorc.New(strings.Join(msgs, "; "), err).ValidWithCtx()
}
