package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseAllRunsInReverseOrder(t *testing.T) {
	var order []string
	RegisterClose(func(context.Context) { order = append(order, "tracer") })
	RegisterClose(func(context.Context) { order = append(order, "app") })
	RegisterClose(func(context.Context) { order = append(order, "http") })

	CloseAll(context.Background())
	assert.Equal(t, []string{"http", "app", "tracer"}, order)

	// 已执行过的关闭函数不会重复执行
	CloseAll(context.Background())
	assert.Len(t, order, 3)
}
