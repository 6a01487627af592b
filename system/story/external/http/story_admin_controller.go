package http

import (
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/mvc"
	"storyhub/pkg/core/result"
	"storyhub/pkg/core/security"
	"storyhub/pkg/core/util"
	"storyhub/system/story/api/dto"
	internalapp "storyhub/system/story/internal/app"

	"github.com/gofiber/fiber/v2"
)

// StoryAdminController 故事后台管理接口，路由组已挂载管理员校验
type StoryAdminController struct {
	app *internalapp.App
	err *errorc.ErrorBuilder
	log *logger.Log
}

// NewStoryAdminController 创建故事后台控制器
func NewStoryAdminController(app *internalapp.App, log *logger.Log) *StoryAdminController {
	return &StoryAdminController{
		app: app,
		err: errorc.NewErrorBuilder("StoryAdminController"),
		log: log.WithEntryName("StoryAdminController"),
	}
}

// RegisterRoutes 注册路由
func (c *StoryAdminController) RegisterRoutes(admin fiber.Router) {
	admin.Get("/stories", c.List)
	admin.Get("/stories/:id", c.Get)
	admin.Post("/stories", c.Create)
	admin.Put("/stories/:id", c.Update)
	admin.Delete("/stories/:id", c.Delete)
}

// List 全部故事（含未发布）
func (c *StoryAdminController) List(ctx *fiber.Ctx) error {
	var page mvc.CursorPage
	if err := ctx.QueryParser(&page); err != nil {
		return c.err.New("分页参数错误", err).ValidWithCtx()
	}
	res, err := c.app.ListStories(util.Context(ctx), false, &page)
	return result.Once(ctx, res, err)
}

func (c *StoryAdminController) Get(ctx *fiber.Ctx) error {
	story, err := c.app.GetStory(util.Context(ctx), ctx.Params("id"))
	return result.Once(ctx, story, err)
}

func (c *StoryAdminController) Create(ctx *fiber.Ctx) error {
	var req dto.SaveStoryReq
	if err := ctx.BodyParser(&req); err != nil {
		return c.err.New("请求参数错误", err).ValidWithCtx()
	}
	authorID, err := security.GetUserID(ctx)
	if err != nil {
		return err
	}

	story, err := c.app.CreateStory(util.Context(ctx), authorID, &req)
	if err != nil {
		return err
	}
	return result.Created(ctx, story)
}

func (c *StoryAdminController) Update(ctx *fiber.Ctx) error {
	var req dto.SaveStoryReq
	if err := ctx.BodyParser(&req); err != nil {
		return c.err.New("请求参数错误", err).ValidWithCtx()
	}
	story, err := c.app.UpdateStory(util.Context(ctx), ctx.Params("id"), &req)
	return result.Once(ctx, story, err)
}

func (c *StoryAdminController) Delete(ctx *fiber.Ctx) error {
	err := c.app.DeleteStory(util.Context(ctx), ctx.Params("id"))
	return result.Once(ctx, true, err)
}
