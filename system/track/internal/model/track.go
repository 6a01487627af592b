package model

import (
	"storyhub/pkg/core/model/common"
)

const CollectionName = "tracks"

// Track 音乐曲目
type Track struct {
	common.Model    `bson:",inline"`
	Title           string `bson:"title" json:"title"`
	Artist          string `bson:"artist" json:"artist"`
	Album           string `bson:"album,omitempty" json:"album"`
	Genre           string `bson:"genre,omitempty" json:"genre"`
	AudioKey        string `bson:"audioKey" json:"audioKey"`
	CoverKey        string `bson:"coverKey,omitempty" json:"coverKey"`
	DurationSeconds int    `bson:"durationSeconds" json:"durationSeconds"`
	UploaderID      string `bson:"uploaderId" json:"uploaderId"`
	LikeCount       int64  `bson:"likeCount" json:"likeCount"`
	CommentCount    int64  `bson:"commentCount" json:"commentCount"`
}
