package http

import (
	"storyhub/pkg/core/result"
	"storyhub/pkg/core/security"
	"storyhub/pkg/core/util"
	"storyhub/pkg/target"
	internalapp "storyhub/system/like/internal/app"

	"github.com/gofiber/fiber/v2"
)

type LikeController struct {
	app *internalapp.App
}

func NewLikeController(app *internalapp.App) *LikeController {
	return &LikeController{app: app}
}

// RegisterRoutes GET 可匿名访问，POST 需要登录
func (c *LikeController) RegisterRoutes(api fiber.Router, optionalAuth, requireAuth fiber.Handler) {
	api.Get("/:targetType/:id/like", optionalAuth, c.State)
	api.Post("/:targetType/:id/like", requireAuth, c.Toggle)
}

func (c *LikeController) Toggle(ctx *fiber.Ctx) error {
	t, err := target.FromPath(ctx.Params("targetType"))
	if err != nil {
		return err
	}
	userID, err := security.GetUserID(ctx)
	if err != nil {
		return err
	}
	state, err := c.app.Toggle(util.Context(ctx), t, ctx.Params("id"), userID)
	return result.Once(ctx, state, err)
}

func (c *LikeController) State(ctx *fiber.Ctx) error {
	t, err := target.FromPath(ctx.Params("targetType"))
	if err != nil {
		return err
	}
	state, err := c.app.State(util.Context(ctx), t, ctx.Params("id"), security.OptionalUserID(ctx))
	return result.Once(ctx, state, err)
}
