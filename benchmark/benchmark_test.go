package benchmark

import (
	"io"
	"testing"
	"time"

	"github.com/cartoworks/geolog/core"
	"github.com/cartoworks/geolog/formatter"
	"github.com/cartoworks/geolog/handler"
	"github.com/cartoworks/geolog/logger"
)

func newBenchLogger(b *testing.B, f formatter.Formatter) *logger.Logger {
	b.Helper()
	reg := logger.NewRegistry()
	l, err := reg.Get("bench", logger.Config{
		Level:         "DEBUG",
		ConsoleWriter: io.Discard,
		Formatter:     f,
		NoPropagate:   true,
	})
	if err != nil {
		b.Fatalf("Get returned error: %v", err)
	}
	return l
}

func BenchmarkProvisioning(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		reg := logger.NewRegistry()
		if _, err := reg.Get("bench", logger.Config{ConsoleWriter: io.Discard}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProvisioning_Refetch(b *testing.B) {
	reg := logger.NewRegistry()
	if _, err := reg.Get("bench", logger.Config{ConsoleWriter: io.Discard}); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := reg.Get("bench", logger.Config{ConsoleWriter: io.Discard}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInfo_Pipe(b *testing.B) {
	l := newBenchLogger(b, formatter.NewPipeFormatter(formatter.Config{}))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

func BenchmarkInfo_JSON(b *testing.B) {
	l := newBenchLogger(b, formatter.NewJSONFormatter(formatter.Config{}))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

func BenchmarkInfo_WithFields(b *testing.B) {
	l := newBenchLogger(b, formatter.NewJSONFormatter(formatter.Config{}))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("request handled",
			logger.String("method", "GET"),
			logger.String("path", "/api/users"),
			logger.Int("status", 200),
			logger.Duration("latency", 150*time.Millisecond),
		)
	}
}

func BenchmarkBelowThreshold(b *testing.B) {
	reg := logger.NewRegistry()
	l, err := reg.Get("bench", logger.Config{
		Level:         "ERROR",
		ConsoleWriter: io.Discard,
		NoPropagate:   true,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug("dropped message")
	}
}

func BenchmarkHandlerDispatch(b *testing.B) {
	entry := &core.Entry{
		Time:    time.Now(),
		Name:    "bench",
		Level:   core.InfoLevel,
		Message: "info message",
	}

	b.Run("noop", func(b *testing.B) {
		h := newNoopHandler()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = h.Handle(entry)
		}
	})

	b.Run("console-pipe", func(b *testing.B) {
		h := handler.NewConsoleHandler(handler.ConsoleConfig{
			Writer:    io.Discard,
			Formatter: formatter.NewPipeFormatter(formatter.Config{}),
		})
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = h.Handle(entry)
		}
	})
}
