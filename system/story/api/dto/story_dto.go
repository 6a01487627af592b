package dto

import (
	"time"
)

// StoryDTO 故事DTO
type StoryDTO struct {
	ID              string    `json:"id" comment:"ID"`
	Title           string    `json:"title" comment:"标题"`
	Description     string    `json:"description" comment:"简介"`
	AudioKey        string    `json:"audioKey" comment:"音频文件Key"`
	AudioURL        string    `json:"audioUrl" comment:"音频播放路径"`
	CoverKey        string    `json:"coverKey,omitempty" comment:"封面文件Key"`
	CoverURL        string    `json:"coverUrl,omitempty" comment:"封面访问路径"`
	DurationSeconds int       `json:"durationSeconds" comment:"时长（秒）"`
	AuthorID        string    `json:"authorId" comment:"作者ID"`
	Published       bool      `json:"published" comment:"是否发布"`
	LikeCount       int64     `json:"likeCount" comment:"点赞数"`
	CommentCount    int64     `json:"commentCount" comment:"评论数"`
	CreatedAt       time.Time `json:"createdAt" comment:"创建时间"`
	UpdatedAt       time.Time `json:"updatedAt" comment:"更新时间"`
}

// SaveStoryReq 创建/更新故事请求
type SaveStoryReq struct {
	Title           string `json:"title" comment:"标题" validate:"required,max=200"`
	Description     string `json:"description" comment:"简介" validate:"max=5000"`
	AudioKey        string `json:"audioKey" comment:"音频文件Key" validate:"required,max=1024"`
	CoverKey        string `json:"coverKey" comment:"封面文件Key" validate:"max=1024"`
	DurationSeconds int    `json:"durationSeconds" comment:"时长（秒）" validate:"gte=0"`
	Published       bool   `json:"published" comment:"是否发布"`
}
