package zap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	timeFmt    = "2006/01/02 15:04:05.000"
	defaultApp = "prizewheel"
)

const (
	Dev Mode = iota
	Prod
)

type Mode int32

// ParseMode 解析配置中的模式字符串，未知值按 Dev 处理
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prod", "production", "1":
		return Prod
	default:
		return Dev
	}
}

// Config 对应 bootstrap 的 log 段
type Config struct {
	Mode  Mode
	Level string
	App   string
	Dir   string
	File  bool // Prod 模式总是落盘
}

// Logger 把 kratos 的 keyvals 转成 zap 字段，msg 键作为消息体
type Logger struct {
	log *zap.Logger
}

var _ log.Logger = (*Logger)(nil)

var levels = map[log.Level]zapcore.Level{
	log.LevelDebug: zapcore.DebugLevel,
	log.LevelInfo:  zapcore.InfoLevel,
	log.LevelWarn:  zapcore.WarnLevel,
	log.LevelError: zapcore.ErrorLevel,
	log.LevelFatal: zapcore.FatalLevel,
}

func (l *Logger) Log(level log.Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "!MISSING-VALUE")
	}

	msg := "no message"
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}

	lv, ok := levels[level]
	if !ok {
		lv = zapcore.InfoLevel
	}
	if ce := l.log.Check(lv, msg); ce != nil {
		ce.Write(fields...)
	}
	return nil
}

func (l *Logger) Sync() error {
	return l.log.Sync()
}

func NewLogger(zl *zap.Logger) *Logger {
	return &Logger{log: zl}
}

func NewLoggerWithConfig(cfg *Config) *Logger {
	return NewLogger(NewZapLogger(cfg))
}

// NewZapLogger 控制台彩色输出；File 或 Prod 时另写 <Dir>/<App>.log 与 <Dir>/<App>_error.log
func NewZapLogger(cfg *Config) *zap.Logger {
	if cfg == nil {
		cfg = &Config{Mode: Dev, Level: "debug"}
	}
	app := cfg.App
	if app == "" {
		app = defaultApp
	}
	lv := zap.NewAtomicLevel()
	if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
		lv.SetLevel(zapcore.DebugLevel)
		_, _ = fmt.Fprintf(os.Stderr, "logger: invalid level %q, using debug\n", cfg.Level)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg(false)), zapcore.Lock(os.Stdout), lv),
	}
	if cfg.File || cfg.Mode == Prod {
		name := filepath.Join(cfg.Dir, app)
		cores = append(cores,
			fileCore(name+".log", lv),
			fileCore(name+"_error.log", zap.ErrorLevel),
		)
	}
	// Helper -> Logger.Log -> zap
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(2))
}

func fileCore(file string, lv zapcore.LevelEnabler) zapcore.Core {
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     7,
		Compress:   true,
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg(true)), zapcore.AddSync(w), lv)
}

func encCfg(file bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + t.Format(timeFmt) + "]")
	}
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.ConsoleSeparator = " "
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if file {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return cfg
}
