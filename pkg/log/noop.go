package log

import (
	"context"

	"go.uber.org/zap"
)

// NewNoop returns a Logger that discards everything. For tests.
func NewNoop() Logger {
	return &noopLogger{s: zap.NewNop().Sugar()}
}

type noopLogger struct {
	s *zap.SugaredLogger
}

func (l *noopLogger) Debug(_ context.Context, args ...any)             { l.s.Debug(args...) }
func (l *noopLogger) Debugf(_ context.Context, t string, args ...any)  { l.s.Debugf(t, args...) }
func (l *noopLogger) Info(_ context.Context, args ...any)              { l.s.Info(args...) }
func (l *noopLogger) Infof(_ context.Context, t string, args ...any)   { l.s.Infof(t, args...) }
func (l *noopLogger) Warn(_ context.Context, args ...any)              { l.s.Warn(args...) }
func (l *noopLogger) Warnf(_ context.Context, t string, args ...any)   { l.s.Warnf(t, args...) }
func (l *noopLogger) Error(_ context.Context, args ...any)             { l.s.Error(args...) }
func (l *noopLogger) Errorf(_ context.Context, t string, args ...any)  { l.s.Errorf(t, args...) }
func (l *noopLogger) Fatal(_ context.Context, args ...any)             { l.s.Fatal(args...) }
func (l *noopLogger) Fatalf(_ context.Context, t string, args ...any)  { l.s.Fatalf(t, args...) }
