package http

import (
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/mvc"
	"storyhub/pkg/core/result"
	"storyhub/pkg/core/util"
	internalapp "storyhub/system/story/internal/app"

	"github.com/gofiber/fiber/v2"
)

// StoryAPIController 故事公开接口
type StoryAPIController struct {
	app *internalapp.App
	err *errorc.ErrorBuilder
	log *logger.Log
}

// NewStoryAPIController 创建故事公开接口控制器
func NewStoryAPIController(app *internalapp.App, log *logger.Log) *StoryAPIController {
	return &StoryAPIController{
		app: app,
		err: errorc.NewErrorBuilder("StoryAPIController"),
		log: log.WithEntryName("StoryAPIController"),
	}
}

// RegisterRoutes 注册路由
func (c *StoryAPIController) RegisterRoutes(api fiber.Router) {
	api.Get("/stories", c.List)
	api.Get("/stories/:id", c.Get)
}

// List 已发布故事列表，按创建时间倒序
func (c *StoryAPIController) List(ctx *fiber.Ctx) error {
	var page mvc.CursorPage
	if err := ctx.QueryParser(&page); err != nil {
		return c.err.New("分页参数错误", err).ValidWithCtx()
	}
	res, err := c.app.ListStories(util.Context(ctx), true, &page)
	return result.Once(ctx, res, err)
}

func (c *StoryAPIController) Get(ctx *fiber.Ctx) error {
	story, err := c.app.GetPublishedStory(util.Context(ctx), ctx.Params("id"))
	return result.Once(ctx, story, err)
}
