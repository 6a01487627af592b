package errorc

import (
	"errors"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", New("bad", nil).ValidWithCtx(), http.StatusBadRequest},
		{"no auth", New("", nil).NoAuth(), http.StatusUnauthorized},
		{"forbidden", New("", nil).Forbidden(), http.StatusForbidden},
		{"not found", New("", nil).NotFound(), http.StatusNotFound},
		{"conflict", New("", nil).Conflict(), http.StatusConflict},
		{"range", New("", nil).RangeNotSatisfiable(), http.StatusRequestedRangeNotSatisfiable},
		{"db", New("", errors.New("x")).DB(), http.StatusInternalServerError},
		{"upstream", New("", errors.New("x")).Third(), http.StatusInternalServerError},
		{"unknown", New("", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.HTTPStatus())
		})
	}
}

func TestSentinelsAreNotFound(t *testing.T) {
	assert.True(t, IsNotFound(mongo.ErrNoDocuments))
	assert.True(t, IsNotFound(New("查询失败", redis.Nil)))
	// Third/DB 不覆盖 NotFound
	assert.True(t, IsNotFound(New("查询失败", mongo.ErrNoDocuments).DB()))
	assert.True(t, IsNotFound(New("读取失败", nil).NotFound().Third()))
	assert.False(t, IsNotFound(errors.New("other")))
	assert.False(t, IsNotFound(nil))
}

func TestWrappedCodePropagates(t *testing.T) {
	inner := New("区间越界", nil).RangeNotSatisfiable()
	outer := New("读取对象失败", inner)

	assert.True(t, IsRange(outer))
	assert.True(t, errors.Is(outer, inner))
	assert.Equal(t, "区间越界", outer.Error())
	assert.Contains(t, outer.Trace(), "MalformedRange")
}

func TestParseError(t *testing.T) {
	assert.Nil(t, ParseError(nil))

	plain := errors.New("boom")
	parsed := ParseError(plain)
	assert.Equal(t, ErrorCodeUnknown, parsed.ErrorCode)
	assert.ErrorIs(t, parsed, plain)

	e := New("x", nil).Forbidden()
	assert.Same(t, e, ParseError(e))
}
