package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/smghasemi/membersync/internal/config"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormLogger routes GORM's logging through slog. Import runs issue
// thousands of upserts, so per-statement logging is debug level and record
// not-found errors (the expected miss during reference resolution) are
// suppressed.
type gormLogger struct {
	logger        *slog.Logger
	slowThreshold time.Duration
	hideSQL       bool
	level         gormlogger.LogLevel
}

func newLogger(cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Info
	if cfg.IsProduction() {
		level = gormlogger.Error
	}

	return &gormLogger{
		logger:        slog.With("component", "gorm"),
		slowThreshold: 200 * time.Millisecond,
		hideSQL:       cfg.IsProduction(),
		level:         level,
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.ErrorContext(ctx, "query failed",
			"error", err,
			"elapsed", elapsed.String(),
			"rows", rows,
			"sql", sql,
		)

	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.logger.WarnContext(ctx, "slow query",
			"elapsed", elapsed.String(),
			"threshold", l.slowThreshold.String(),
			"rows", rows,
			"sql", sql,
		)

	case l.level >= gormlogger.Info:
		fields := []any{
			"elapsed", elapsed.String(),
			"rows", rows,
		}
		if !l.hideSQL {
			fields = append(fields, "sql", sql)
		}
		l.logger.DebugContext(ctx, "query executed", fields...)
	}
}
