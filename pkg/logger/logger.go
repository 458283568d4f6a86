// Package logger, uygulama genelinde kullanılan structured logger'ı sağlar.
//
// go.uber.org/zap üzerine ince bir katman: SugaredLogger'ı bir interface arkasına
// saklarız, böylece service'ler concrete zap tipine değil Logger interface'ine bağımlı olur.
//
// Logger'lar inject edilir ve bileşen adıyla isimlendirilir:
//
//	lggr := logger.Named(root, "workshop-service")
//
// Testlerde Test(t) kullanılır; çıktı `go test -v` ile test log'una yazılır.
package logger

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Logger, projede kullanılan log interface'i. zap.SugaredLogger bunu implement eder.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)

	Debugf(format string, values ...any)
	Infof(format string, values ...any)
	Warnf(format string, values ...any)
	Errorf(format string, values ...any)

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// With, verilen key/value çiftlerini her log satırına ekleyen child logger döner.
	With(args ...any) *zap.SugaredLogger

	// Named, logger adına bir segment ekler (ör: "campus.workshop").
	Named(name string) *zap.SugaredLogger

	// Sync, buffer'daki log'ları flush eder.
	Sync() error
}

// New, verilen seviye için production (JSON) logger oluşturur.
// level: "debug", "info", "warn", "error", boş ise "info".
func New(level string) (Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level.SetLevel(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return core.Sugar(), nil
}

// ParseLevel, env'den gelen log seviyesini zapcore.Level'a çevirir.
func ParseLevel(level string) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zapcore.InfoLevel, nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return lvl, nil
}

// Named, root logger'dan isimlendirilmiş bir child logger döner.
func Named(l Logger, name string) Logger {
	return l.Named(name)
}

// Test, tb için debug seviyesinde test logger döner.
func Test(tb testing.TB) Logger {
	tb.Helper()

	return zaptest.NewLogger(tb, zaptest.Level(zapcore.DebugLevel)).Sugar()
}

// TestObserved, log satırlarını assert edebilmek için ObservedLogs ile birlikte döner.
func TestObserved(tb testing.TB, lvl zapcore.Level) (Logger, *observer.ObservedLogs) {
	tb.Helper()

	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return zaptest.NewLogger(tb, zaptest.WrapOptions(observe)).Sugar(), logs
}

// Nop, hiçbir şey yazmayan logger döner.
func Nop() Logger {
	return zap.New(zapcore.NewNopCore()).Sugar()
}
