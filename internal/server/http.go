package server

import (
	nethttp "net/http"

	v1 "prizewheel/api/wheel/v1"
	"prizewheel/internal/conf"
	"prizewheel/internal/notify"
	"prizewheel/internal/service"
	"prizewheel/pkg/xgo"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metrics"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/middleware/validate"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ProviderSet is server providers.
var ProviderSet = wire.NewSet(NewHTTPServer)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, wheel *service.WheelService, hub *notify.Hub, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			validate.Validator(),
			logging.Server(logger),
			metrics.Server(),
		),
		http.ResponseEncoder(encodeResponse),
	}
	if c != nil && c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, http.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout > 0 {
			opts = append(opts, http.Timeout(c.Http.Timeout.AsDuration()))
		}
	}
	srv := http.NewServer(opts...)
	v1.RegisterWheelHTTPServer(srv, wheel)

	// 页面、矢量图、头像资源
	srv.HandleFunc("/", wheel.Index)
	srv.HandleFunc("/wheel.svg", wheel.SVG)
	srv.HandlePrefix("/images/", wheel.Assets())

	// 开始旋转 / 中奖事件推送
	srv.Handle("/ws", hub)

	// 注册 Prometheus /metrics 端点
	srv.Handle("/metrics", promhttp.Handler())

	return srv
}

// encodeResponse 使用 jsoniter 输出 JSON
func encodeResponse(w nethttp.ResponseWriter, _ *nethttp.Request, v interface{}) error {
	if v == nil {
		return nil
	}
	data, err := xgo.JSON.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(data)
	return err
}
