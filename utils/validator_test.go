package utils

import (
	"testing"

	errorc "storyhub/pkg/core/err"

	"github.com/stretchr/testify/assert"
)

type sampleReq struct {
	Title    string `json:"title" comment:"标题" validate:"required,max=10"`
	Body     string `json:"body" comment:"内容" validate:"omitempty,min=2"`
	Prefix   string `json:"prefix" validate:"omitempty,oneof=stories tracks covers"`
	Duration int    `json:"durationSeconds" comment:"时长" validate:"gte=0"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&sampleReq{Title: "ok"}))

	cases := []struct {
		name string
		req  *sampleReq
		msg  string
	}{
		{"required", &sampleReq{}, "标题不能为空"},
		{"max", &sampleReq{Title: "01234567890"}, "标题长度不能超过10"},
		{"min", &sampleReq{Title: "ok", Body: "x"}, "内容长度不能少于2"},
		{"oneof", &sampleReq{Title: "ok", Prefix: "other"}, "prefix必须是[stories tracks covers]中的一个"},
		{"gte", &sampleReq{Title: "ok", Duration: -1}, "时长必须大于或等于0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.req)
			assert.True(t, errorc.IsValidation(err))
			assert.Equal(t, tc.msg, errorc.ParseError(err).Msg)
		})
	}
}

func TestValidateRequestJoinsFieldErrors(t *testing.T) {
	err := ValidateRequest(&sampleReq{Duration: -1})
	assert.Equal(t, "标题不能为空; 时长必须大于或等于0", errorc.ParseError(err).Msg)
}

func TestValidateRequestRejectsNonStruct(t *testing.T) {
	var nilReq *sampleReq
	for _, input := range []interface{}{"title", 42, nilReq} {
		err := ValidateRequest(input)
		assert.True(t, errorc.IsValidation(err), "%T", input)
	}
}
