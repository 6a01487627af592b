package streaming

import (
	"testing"

	errorc "storyhub/pkg/core/err"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name   string
		header string
		size   int64
		want   ByteRange
	}{
		{"closed", "bytes=0-99", 1000, ByteRange{Start: 0, End: 99}},
		{"open end", "bytes=100-", 500000, ByteRange{Start: 100, End: 499999}},
		{"end clamped", "bytes=900-5000", 1000, ByteRange{Start: 900, End: 999}},
		{"single byte", "bytes=5-5", 10, ByteRange{Start: 5, End: 5}},
		{"last byte", "bytes=999-", 1000, ByteRange{Start: 999, End: 999}},
		{"suffix", "bytes=-100", 1000, ByteRange{Start: 900, End: 999}},
		{"suffix larger than object", "bytes=-5000", 1000, ByteRange{Start: 0, End: 999}},
		{"multi range keeps first", "bytes=0-9,20-29", 100, ByteRange{Start: 0, End: 9}},
		{"case insensitive unit", "Bytes=1-2", 10, ByteRange{Start: 1, End: 2}},
		{"surrounding spaces", " bytes= 3-4 ", 10, ByteRange{Start: 3, End: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(tt.header, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.End-tt.want.Start+1, got.Length())
		})
	}
}

func TestParseRangeNotSatisfiable(t *testing.T) {
	tests := []struct {
		name   string
		header string
		size   int64
	}{
		{"start beyond length", "bytes=1000-", 1000},
		{"start beyond length closed", "bytes=1000-1100", 1000},
		{"start after end", "bytes=50-10", 1000},
		{"wrong unit", "items=0-10", 1000},
		{"no dash", "bytes=10", 1000},
		{"empty range", "bytes=", 1000},
		{"only dash", "bytes=-", 1000},
		{"zero suffix", "bytes=-0", 1000},
		{"letters", "bytes=a-b", 1000},
		{"signed start", "bytes=+5-10", 1000},
		{"negative end", "bytes=5--10", 1000},
		{"empty object", "bytes=0-", 0},
		{"suffix on empty object", "bytes=-10", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRange(tt.header, tt.size)
			require.Error(t, err)
			assert.True(t, errorc.IsRange(err))
			assert.Equal(t, 416, errorc.CodeOf(err).HTTPStatus())
		})
	}
}
