package http

import (
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/result"
	"storyhub/pkg/core/security"
	"storyhub/pkg/core/util"
	"storyhub/system/track/api/dto"
	internalapp "storyhub/system/track/internal/app"

	"github.com/gofiber/fiber/v2"
)

// TrackController 曲目接口，公开查询与后台管理共用
type TrackController struct {
	app *internalapp.App
	err *errorc.ErrorBuilder
}

func NewTrackController(app *internalapp.App) *TrackController {
	return &TrackController{
		app: app,
		err: errorc.NewErrorBuilder("TrackController"),
	}
}

// RegisterRoutes 注册公开路由
func (c *TrackController) RegisterRoutes(api fiber.Router) {
	api.Get("/tracks", c.List)
	api.Get("/tracks/:id", c.Get)
}

// RegisterAdminRoutes 注册后台路由
func (c *TrackController) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/tracks", c.List)
	admin.Get("/tracks/:id", c.Get)
	admin.Post("/tracks", c.Create)
	admin.Put("/tracks/:id", c.Update)
	admin.Delete("/tracks/:id", c.Delete)
}

func (c *TrackController) List(ctx *fiber.Ctx) error {
	var req dto.ListTrackReq
	if err := ctx.QueryParser(&req); err != nil {
		return c.err.New("查询参数错误", err).ValidWithCtx()
	}
	res, err := c.app.ListTracks(util.Context(ctx), &req)
	return result.Once(ctx, res, err)
}

func (c *TrackController) Get(ctx *fiber.Ctx) error {
	track, err := c.app.GetTrack(util.Context(ctx), ctx.Params("id"))
	return result.Once(ctx, track, err)
}

func (c *TrackController) Create(ctx *fiber.Ctx) error {
	var req dto.SaveTrackReq
	if err := ctx.BodyParser(&req); err != nil {
		return c.err.New("请求参数错误", err).ValidWithCtx()
	}
	uploaderID, err := security.GetUserID(ctx)
	if err != nil {
		return err
	}

	track, err := c.app.CreateTrack(util.Context(ctx), uploaderID, &req)
	if err != nil {
		return err
	}
	return result.Created(ctx, track)
}

func (c *TrackController) Update(ctx *fiber.Ctx) error {
	var req dto.SaveTrackReq
	if err := ctx.BodyParser(&req); err != nil {
		return c.err.New("请求参数错误", err).ValidWithCtx()
	}
	track, err := c.app.UpdateTrack(util.Context(ctx), ctx.Params("id"), &req)
	return result.Once(ctx, track, err)
}

func (c *TrackController) Delete(ctx *fiber.Ctx) error {
	err := c.app.DeleteTrack(util.Context(ctx), ctx.Params("id"))
	return result.Once(ctx, true, err)
}
