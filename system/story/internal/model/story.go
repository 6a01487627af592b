package model

import (
	"storyhub/pkg/core/model/common"
)

const CollectionName = "stories"

// Story 音频故事
type Story struct {
	common.Model    `bson:",inline"`
	Title           string `bson:"title" json:"title" comment:"标题"`
	Description     string `bson:"description" json:"description" comment:"简介"`
	AudioKey        string `bson:"audioKey" json:"audioKey" comment:"音频文件Key"`
	CoverKey        string `bson:"coverKey,omitempty" json:"coverKey" comment:"封面文件Key"`
	DurationSeconds int    `bson:"durationSeconds" json:"durationSeconds" comment:"时长（秒）"`
	AuthorID        string `bson:"authorId" json:"authorId" comment:"作者ID"`
	Published       bool   `bson:"published" json:"published" comment:"是否发布"`
	LikeCount       int64  `bson:"likeCount" json:"likeCount" comment:"点赞数"`
	CommentCount    int64  `bson:"commentCount" json:"commentCount" comment:"评论数"`
}
