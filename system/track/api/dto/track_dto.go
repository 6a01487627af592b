package dto

import "time"

// TrackDTO 曲目DTO
type TrackDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Artist          string    `json:"artist"`
	Album           string    `json:"album,omitempty"`
	Genre           string    `json:"genre,omitempty"`
	AudioKey        string    `json:"audioKey"`
	AudioURL        string    `json:"audioUrl"`
	CoverKey        string    `json:"coverKey,omitempty"`
	CoverURL        string    `json:"coverUrl,omitempty"`
	DurationSeconds int       `json:"durationSeconds"`
	UploaderID      string    `json:"uploaderId"`
	LikeCount       int64     `json:"likeCount"`
	CommentCount    int64     `json:"commentCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SaveTrackReq 创建/更新曲目请求
type SaveTrackReq struct {
	Title           string `json:"title" comment:"标题" validate:"required,max=200"`
	Artist          string `json:"artist" comment:"艺术家" validate:"required,max=200"`
	Album           string `json:"album" comment:"专辑" validate:"max=200"`
	Genre           string `json:"genre" comment:"流派" validate:"max=50"`
	AudioKey        string `json:"audioKey" comment:"音频文件Key" validate:"required,max=1024"`
	CoverKey        string `json:"coverKey" comment:"封面文件Key" validate:"max=1024"`
	DurationSeconds int    `json:"durationSeconds" comment:"时长（秒）" validate:"gte=0"`
}

// ListTrackReq 曲目列表查询
type ListTrackReq struct {
	Genre  string `query:"genre"`
	Cursor string `query:"cursor"`
	Limit  int    `query:"limit"`
}
