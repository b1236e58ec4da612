package zap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"prod": Prod, "PRODUCTION": Prod, "dev": Dev, "": Dev, "weird": Dev}
	for in, want := range cases {
		if got := ParseMode(in); got != want {
			t.Errorf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewLogger(zap.New(core))
	h := log.NewHelper(l)

	h.Infow("msg", "spin settled", "winner", "Decided")
	_ = l.Log(log.LevelWarn, "odd")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Message != "spin settled" {
		t.Errorf("message = %q", entries[0].Message)
	}
	if v, ok := entries[0].ContextMap()["winner"]; !ok || v != "Decided" {
		t.Errorf("winner field = %v", v)
	}
	if entries[1].Level != zap.WarnLevel || entries[1].Message != "no message" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestNewZapLoggerWritesFiles(t *testing.T) {
	dir := t.TempDir()
	zl := NewZapLogger(&Config{Mode: Dev, Level: "info", App: "wheeltest", Dir: dir, File: true})
	l := NewLogger(zl)
	h := log.NewHelper(l)
	h.Debug("dropped below level")
	h.Info("spin started")
	h.Error("announce failed")
	_ = l.Sync()

	all, err := os.ReadFile(filepath.Join(dir, "wheeltest.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(all), "spin started") || strings.Contains(string(all), "dropped below level") {
		t.Errorf("main log = %q", all)
	}
	errs, err := os.ReadFile(filepath.Join(dir, "wheeltest_error.log"))
	if err != nil {
		t.Fatalf("read error log: %v", err)
	}
	if strings.Contains(string(errs), "spin started") || !strings.Contains(string(errs), "announce failed") {
		t.Errorf("error log = %q", errs)
	}
}
