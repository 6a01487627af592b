package stream

import (
	"storyhub/pkg/core/logger"
	"storyhub/pkg/storage"
	"storyhub/pkg/streaming"
	controller "storyhub/system/stream/external/http"
)

// Module 媒体流组件：/stream 读取与后台上传
type Module struct {
	Inspector *streaming.Inspector
	stream    *controller.StreamController
	media     *controller.MediaController
}

// NewModule recorder 可为 nil
func NewModule(store storage.ObjectStore, maxAge int, recorder streaming.BytesRecorder, log *logger.Log) *Module {
	inspector := streaming.NewInspector(store)
	responder := streaming.NewResponder(store, maxAge, recorder)
	return &Module{
		Inspector: inspector,
		stream:    controller.NewStreamController(inspector, responder, log),
		media:     controller.NewMediaController(store, log),
	}
}
