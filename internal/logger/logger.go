package logger

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

var Log = zerolog.Nop()

// Init initializes the global logger with the specified level.
// Valid levels: debug, info, warn, error
func Init(level string) {
	InitWithWriter(level, os.Stdout)
}

// InitWithWriter is Init with an explicit sink. Headless mode logs to stderr so stdout stays JSON.
func InitWithWriter(level string, w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	Log = zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Module returns a logger with a module field for scoped logging.
func Module(name string) zerolog.Logger {
	return Log.With().Str("module", name).Logger()
}

// GormLogger adapts zerolog to gorm's logger.Interface.
type GormLogger struct {
	zlog          zerolog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger creates a gorm-compatible logger for the given module.
func NewGormLogger(module string) *GormLogger {
	return &GormLogger{
		zlog:          Module(module),
		level:         gormlogger.Warn,
		slowThreshold: 200 * time.Millisecond,
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.zlog.Info().Msgf(msg, args...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.zlog.Warn().Msgf(msg, args...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.zlog.Error().Msgf(msg, args...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		l.zlog.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")
	case elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.zlog.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("slow query")
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.zlog.Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
