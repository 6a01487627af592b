package dto

import "time"

type CommentDTO struct {
	ID         string    `json:"id"`
	TargetType string    `json:"targetType"`
	TargetID   string    `json:"targetId"`
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateCommentReq 发表评论请求
type CreateCommentReq struct {
	Body string `json:"body" comment:"评论内容" validate:"required,min=1,max=1000"`
}
