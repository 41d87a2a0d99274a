package icx

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// runLogger ties one Encode/Decode invocation to a correlation id carried
// on every log line it emits, writing either to stderr or to a rotating
// file sink when a log path is configured.
type runLogger struct {
	log   zerolog.Logger
	runID string
}

// LogOptions configures where and how verbosely a run logs. The zero
// value logs Info and above to stderr, matching spec.md's "no
// configuration required" default.
type LogOptions struct {
	// LogFile, when non-empty, routes logging through a rotating file
	// sink instead of stderr.
	LogFile string
	// Verbose raises the level from Info to Debug, surfacing one line
	// per pipeline stage transition.
	Verbose bool
}

func newRunLogger(opts LogOptions) *runLogger {
	var w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	var sink interface {
		Write([]byte) (int, error)
	} = w
	if opts.LogFile != "" {
		sink = &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	id := uuid.New().String()
	logger := zerolog.New(sink).Level(level).With().Timestamp().Str("run_id", id).Logger()
	return &runLogger{log: logger, runID: id}
}

// stage runs fn, logging its name, the run id, and its elapsed duration
// at Debug level, and logs failures at Error level regardless of
// verbosity.
func (l *runLogger) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if err != nil {
		l.log.Error().Str("stage", name).Dur("elapsed", elapsed).Err(err).Msg("stage failed")
		return err
	}
	l.log.Debug().Str("stage", name).Dur("elapsed", elapsed).Msg("stage complete")
	return nil
}
