package mvc

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorPageSize(t *testing.T) {
	var nilPage *CursorPage
	assert.Equal(t, DefaultPageSize, nilPage.Size())
	assert.Equal(t, DefaultPageSize, (&CursorPage{}).Size())
	assert.Equal(t, 5, (&CursorPage{Limit: 5}).Size())
	assert.Equal(t, MaxPageSize, (&CursorPage{Limit: 1000}).Size())
}

func TestNewCursorResult(t *testing.T) {
	idOf := func(i int) string { return strconv.Itoa(i) }

	res := NewCursorResult([]int{9, 8, 7}, true, idOf)
	assert.Equal(t, 3, res.Count)
	assert.True(t, res.HasMore)
	assert.Equal(t, "7", res.NextCursor)

	res = NewCursorResult([]int{2, 1}, false, idOf)
	assert.Equal(t, 2, res.Count)
	assert.Empty(t, res.NextCursor)

	res = NewCursorResult[int](nil, false, idOf)
	assert.NotNil(t, res.Items)
	assert.Equal(t, 0, res.Count)

	mapped := MapCursorResult(NewCursorResult([]int{3, 2}, true, idOf), func(i int) string { return "n" + strconv.Itoa(i) })
	assert.Equal(t, []string{"n3", "n2"}, mapped.Items)
	assert.Equal(t, "2", mapped.NextCursor)
	assert.True(t, mapped.HasMore)
}
