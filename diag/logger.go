package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Subsystem names a toggleable diagnostic channel.
type Subsystem string

const (
	Topology Subsystem = "topology"
	Routing  Subsystem = "routing"
	Alloc    Subsystem = "alloc"
)

// Logger wraps a zerolog.Logger with an independent enable flag per
// Subsystem, so a caller can turn on e.g. only "topology" diagnostics
// (mirroring unitorus_debug) without routing/alloc noise.
type Logger struct {
	zl      zerolog.Logger
	enabled map[Subsystem]bool
}

// New builds a Logger writing to w, with the given subsystems enabled.
// Subsystems not present in enabled default to disabled.
func New(w io.Writer, enabled map[Subsystem]bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	zl := zerolog.New(w).With().Timestamp().Logger()
	if enabled == nil {
		enabled = map[Subsystem]bool{}
	}
	return &Logger{zl: zl, enabled: enabled}
}

// Nop returns a Logger with every subsystem disabled.
func Nop() *Logger {
	return New(io.Discard, nil)
}

// Enabled reports whether sub has been turned on.
func (l *Logger) Enabled(sub Subsystem) bool {
	return l != nil && l.enabled[sub]
}

// SetEnabled toggles sub on or off.
func (l *Logger) SetEnabled(sub Subsystem, on bool) {
	if l == nil {
		return
	}
	l.enabled[sub] = on
}

// Debugf logs a formatted debug message on sub, if enabled.
func (l *Logger) Debugf(sub Subsystem, format string, args ...interface{}) {
	if !l.Enabled(sub) {
		return
	}
	l.zl.Debug().Str("subsystem", string(sub)).Msgf(format, args...)
}

// Warnf logs a formatted warning on sub, regardless of the enable flag —
// warnings (e.g. a recovered routing invariant violation) are surfaced even
// when debug tracing is off.
func (l *Logger) Warnf(sub Subsystem, format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.zl.Warn().Str("subsystem", string(sub)).Msgf(format, args...)
}

// Errorf logs a formatted error on sub, regardless of the enable flag.
func (l *Logger) Errorf(sub Subsystem, format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.zl.Error().Str("subsystem", string(sub)).Msgf(format, args...)
}
