//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"prizewheel/internal/biz"
	"prizewheel/internal/conf"
	"prizewheel/internal/notify"
	"prizewheel/internal/render"
	"prizewheel/internal/server"
	"prizewheel/internal/service"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(*conf.Server, *conf.Wheel, *conf.Notify, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(server.ProviderSet, biz.ProviderSet, notify.ProviderSet, render.ProviderSet, service.ProviderSet, newApp))
}
