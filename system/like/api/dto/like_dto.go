package dto

// LikeStateDTO 点赞状态，Toggle 返回的是服务端确认后的结果
type LikeStateDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}
