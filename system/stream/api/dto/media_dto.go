package dto

// UploadMediaReq 上传表单中除文件外的字段
type UploadMediaReq struct {
	Prefix string `form:"prefix" comment:"目录" validate:"omitempty,oneof=stories tracks covers"`
}

// MediaDTO 上传结果
type MediaDTO struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
