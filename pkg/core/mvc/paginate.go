package mvc

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CursorPage 游标分页参数，Cursor 为上一页最后一条记录的ID
type CursorPage struct {
	Cursor string `query:"cursor" json:"cursor"`
	Limit  int    `query:"limit" json:"limit"`
}

// Size 规范化后的页大小
func (p *CursorPage) Size() int {
	if p == nil || p.Limit <= 0 {
		return DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		return MaxPageSize
	}
	return p.Limit
}

// CursorResult 游标分页结果；Count 为本页条数，不是总数
type CursorResult[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
	Count      int    `json:"count"`
}

// NewCursorResult 用本页最后一条记录的ID作为下一页游标
func NewCursorResult[T any](items []T, hasMore bool, idOf func(T) string) *CursorResult[T] {
	if items == nil {
		items = []T{}
	}
	res := &CursorResult[T]{
		Items:   items,
		HasMore: hasMore,
		Count:   len(items),
	}
	if hasMore && len(items) > 0 {
		res.NextCursor = idOf(items[len(items)-1])
	}
	return res
}

// MapCursorResult 转换分页结果的元素类型，游标等信息保持不变
func MapCursorResult[S any, D any](src *CursorResult[S], fn func(S) D) *CursorResult[D] {
	items := make([]D, 0, len(src.Items))
	for _, item := range src.Items {
		items = append(items, fn(item))
	}
	return &CursorResult[D]{
		Items:      items,
		NextCursor: src.NextCursor,
		HasMore:    src.HasMore,
		Count:      len(items),
	}
}
