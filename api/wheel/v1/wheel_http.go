package v1

import (
	"context"

	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationWheelSpin   = "/wheel.v1.Wheel/Spin"
	OperationWheelState  = "/wheel.v1.Wheel/State"
	OperationWheelStats  = "/wheel.v1.Wheel/Stats"
	OperationWheelLayout = "/wheel.v1.Wheel/Layout"
)

type WheelHTTPServer interface {
	Spin(context.Context, *SpinRequest) (*SpinReply, error)
	State(context.Context, *StateRequest) (*StateReply, error)
	Stats(context.Context, *StatsRequest) (*StatsReply, error)
	Layout(context.Context, *LayoutRequest) (*LayoutReply, error)
}

func RegisterWheelHTTPServer(s *http.Server, srv WheelHTTPServer) {
	r := s.Route("/")
	r.POST("/api/wheel/spin", _Wheel_Spin0_HTTP_Handler(srv))
	r.GET("/api/wheel/state", _Wheel_State0_HTTP_Handler(srv))
	r.GET("/api/wheel/stats", _Wheel_Stats0_HTTP_Handler(srv))
	r.GET("/api/wheel/layout", _Wheel_Layout0_HTTP_Handler(srv))
}

func _Wheel_Spin0_HTTP_Handler(srv WheelHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in SpinRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationWheelSpin)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Spin(ctx, req.(*SpinRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*SpinReply))
	}
}

func _Wheel_State0_HTTP_Handler(srv WheelHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in StateRequest
		http.SetOperation(ctx, OperationWheelState)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.State(ctx, req.(*StateRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*StateReply))
	}
}

func _Wheel_Stats0_HTTP_Handler(srv WheelHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in StatsRequest
		http.SetOperation(ctx, OperationWheelStats)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Stats(ctx, req.(*StatsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*StatsReply))
	}
}

func _Wheel_Layout0_HTTP_Handler(srv WheelHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in LayoutRequest
		http.SetOperation(ctx, OperationWheelLayout)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Layout(ctx, req.(*LayoutRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*LayoutReply))
	}
}
