package main

import (
	"flag"
	"os"
	"time"

	"prizewheel/internal/conf"
	"prizewheel/pkg/zap"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/joho/godotenv"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	Name     = "prizewheel"
	Version  = "v0.0.1"
	flagconf string
	flagenv  string
	id, _    = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, eg: -conf config.yaml")
	flag.StringVar(&flagenv, "env", ".env", "dotenv file, missing file is ignored")

	time.Local = initLocation()
}

// initLocation 初始化时区，失败时使用UTC
func initLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		log.Warnf("无法加载 Asia/Shanghai 时区，使用 UTC: %v", err)
		return time.UTC
	}
	return loc
}

func newApp(logger log.Logger, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(
			hs,
		),
	)
}

func main() {
	flag.Parse()

	log.Infof("Starting server. Name=%q, Version=%q", Name, Version)

	// .env 里的 WHEEL_* 变量供配置占位符使用
	if err := godotenv.Load(flagenv); err != nil && !os.IsNotExist(err) {
		log.Warnf("load %s: %v", flagenv, err)
	}

	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
			env.NewSource("WHEEL_"),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}
	if bc.Log == nil {
		bc.Log = &conf.Log{}
	}

	logger := zap.NewLoggerWithConfig(&zap.Config{
		Mode:  zap.ParseMode(bc.Log.Mode),
		Level: bc.Log.Level,
		App:   bc.Log.App,
		Dir:   bc.Log.Dir,
		File:  bc.Log.File,
	})
	defer logger.Sync()

	app, cleanup, err := wireApp(bc.Server, bc.Wheel, bc.Notify, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	// start and wait for stop signal
	if err := app.Run(); err != nil {
		panic(err)
	}
}
