package http

import (
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/mvc"
	"storyhub/pkg/core/result"
	"storyhub/pkg/core/security"
	"storyhub/pkg/core/util"
	"storyhub/pkg/target"
	"storyhub/system/comment/api/dto"
	internalapp "storyhub/system/comment/internal/app"

	"github.com/gofiber/fiber/v2"
)

type CommentController struct {
	app *internalapp.App
	err *errorc.ErrorBuilder
}

func NewCommentController(app *internalapp.App) *CommentController {
	return &CommentController{
		app: app,
		err: errorc.NewErrorBuilder("CommentController"),
	}
}

// RegisterRoutes requireAuth 为登录校验中间件
func (c *CommentController) RegisterRoutes(api fiber.Router, requireAuth fiber.Handler) {
	api.Get("/:targetType/:id/comments", c.List)
	api.Post("/:targetType/:id/comments", requireAuth, c.Create)
	api.Delete("/comments/:id", requireAuth, c.Delete)
}

func (c *CommentController) List(ctx *fiber.Ctx) error {
	t, err := target.FromPath(ctx.Params("targetType"))
	if err != nil {
		return err
	}
	var page mvc.CursorPage
	if err := ctx.QueryParser(&page); err != nil {
		return c.err.New("分页参数错误", err).ValidWithCtx()
	}
	res, err := c.app.ListComments(util.Context(ctx), t, ctx.Params("id"), &page)
	return result.Once(ctx, res, err)
}

func (c *CommentController) Create(ctx *fiber.Ctx) error {
	t, err := target.FromPath(ctx.Params("targetType"))
	if err != nil {
		return err
	}
	var req dto.CreateCommentReq
	if err := ctx.BodyParser(&req); err != nil {
		return c.err.New("请求参数错误", err).ValidWithCtx()
	}
	author, err := operator(ctx)
	if err != nil {
		return err
	}

	comment, err := c.app.CreateComment(util.Context(ctx), t, ctx.Params("id"), author, &req)
	if err != nil {
		return err
	}
	return result.Created(ctx, comment)
}

func (c *CommentController) Delete(ctx *fiber.Ctx) error {
	op, err := operator(ctx)
	if err != nil {
		return err
	}
	err = c.app.DeleteComment(util.Context(ctx), ctx.Params("id"), op)
	return result.Once(ctx, true, err)
}

func operator(ctx *fiber.Ctx) (internalapp.Author, error) {
	userID, err := security.GetUserID(ctx)
	if err != nil {
		return internalapp.Author{}, err
	}
	return internalapp.Author{
		UserID:   userID,
		Username: security.GetUsername(ctx),
		IsAdmin:  security.IsAdmin(ctx),
	}, nil
}
