package http

import (
	"path"
	"path/filepath"
	"strings"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/result"
	"storyhub/pkg/core/util"
	"storyhub/pkg/storage"
	"storyhub/pkg/streaming"
	"storyhub/system/stream/api/dto"
	"storyhub/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultPrefix = "media"

// MediaController 媒体文件上传与删除，仅管理员可用
type MediaController struct {
	store storage.ObjectStore
	err   *errorc.ErrorBuilder
	log   *logger.Log
}

func NewMediaController(store storage.ObjectStore, log *logger.Log) *MediaController {
	return &MediaController{
		store: store,
		err:   errorc.NewErrorBuilder("MediaController"),
		log:   log.WithEntryName("MediaController"),
	}
}

func (m *MediaController) RegisterRoutes(admin fiber.Router) {
	admin.Post("/media", m.Upload)
	admin.Delete("/media/*", m.Delete)
}

// Upload 文件类型按内容识别，不信任客户端声明
func (m *MediaController) Upload(c *fiber.Ctx) error {
	var req dto.UploadMediaReq
	if err := c.BodyParser(&req); err != nil {
		return m.err.New("请求参数错误", err).ValidWithCtx()
	}
	if err := utils.ValidateRequest(&req); err != nil {
		return err
	}

	header, err := c.FormFile("file")
	if err != nil {
		return m.err.New("缺少上传文件", err).ValidWithCtx()
	}
	file, err := header.Open()
	if err != nil {
		return m.err.New("读取上传文件失败", err).ValidWithCtx()
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return m.err.New("识别文件类型失败", err).ValidWithCtx()
	}
	if !allowed(req.Prefix, mtype) {
		return m.err.New("不支持的文件类型: "+mtype.String(), nil).ValidWithCtx()
	}
	if _, err := file.Seek(0, 0); err != nil {
		return m.err.New("读取上传文件失败", err)
	}

	prefix := req.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	ext := mtype.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(header.Filename))
	}
	key := path.Join(prefix, uuid.NewString()+ext)
	contentType := storage.ResolveContentType(mtype.String(), key)

	ctx := util.Context(c)
	if err := m.store.Put(ctx, key, file, header.Size, contentType); err != nil {
		return err
	}
	m.log.WithTrace(ctx).WithKey(key).WithField("size", header.Size).Info("上传媒体文件")

	return result.Created(c, &dto.MediaDTO{
		Key:         key,
		URL:         streaming.StreamPath(key),
		ContentType: contentType,
		Size:        header.Size,
	})
}

func (m *MediaController) Delete(c *fiber.Ctx) error {
	key, err := streaming.DecodeKey(c.Params("*"))
	if err != nil {
		return err
	}
	err = m.store.Delete(util.Context(c), key)
	return result.Once(c, true, err)
}

// allowed 封面只接受图片，其余目录只接受音视频
func allowed(prefix string, mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		major := strings.SplitN(m.String(), "/", 2)[0]
		switch {
		case prefix == "covers" && major == "image":
			return true
		case prefix != "covers" && (major == "audio" || major == "video"):
			return true
		}
	}
	return false
}
