package http

import (
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/util"
	"storyhub/pkg/streaming"

	"github.com/gofiber/fiber/v2"
)

// StreamController 媒体流读取接口，错误以纯文本返回
type StreamController struct {
	inspector *streaming.Inspector
	responder *streaming.Responder
	log       *logger.Log
}

func NewStreamController(inspector *streaming.Inspector, responder *streaming.Responder, log *logger.Log) *StreamController {
	return &StreamController{
		inspector: inspector,
		responder: responder,
		log:       log.WithEntryName("StreamController"),
	}
}

// RegisterRoutes HEAD 需先于 GET 注册，否则会被 GET 的隐式 HEAD 路由接管
func (s *StreamController) RegisterRoutes(router fiber.Router) {
	router.Head("/*", s.Head)
	router.Add(fiber.MethodGet, "/*", s.Get)
}

func (s *StreamController) Get(c *fiber.Ctx) error {
	key, err := streaming.DecodeKey(c.Params("*"))
	if err != nil {
		return err
	}
	ctx := util.Context(c)

	info, err := s.inspector.Metadata(ctx, key)
	if err != nil {
		return s.fail(c, key, err)
	}
	if err := s.responder.Stream(c, key, info, c.Get(fiber.HeaderRange)); err != nil {
		return s.fail(c, key, err)
	}
	return nil
}

func (s *StreamController) Head(c *fiber.Ctx) error {
	key, err := streaming.DecodeKey(c.Params("*"))
	if err != nil {
		return err
	}

	info, err := s.inspector.Metadata(util.Context(c), key)
	if err != nil {
		return s.fail(c, key, err)
	}
	return s.responder.Head(c, info)
}

// fail 非 4xx 的错误记录原因后再返回
func (s *StreamController) fail(c *fiber.Ctx, key string, err error) error {
	cErr := errorc.ParseError(err)
	if cErr.HTTPStatus() >= fiber.StatusInternalServerError {
		cErr.WithTraceID(util.Context(c)).ToLog(s.log.WithKey(key).Entry, "媒体流读取失败")
	}
	return cErr
}
