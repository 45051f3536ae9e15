package logger

import (
	"github.com/statuskit/statuskit/pkg/status"
)

// sink adapts a Logger to the status.LeveledLogger surface. The wrapper is
// needed because Logger.Error takes an error argument that Results do not
// carry.
type sink struct {
	log *Logger
}

// Sink returns a status.LeveledLogger backed by this Logger, so Results can
// be logged straight into zerolog:
//
//	res.Log(log.Sink(), "verifyChecks")
func (l *Logger) Sink() status.LeveledLogger {
	return sink{log: l}
}

func (s sink) Info(msg string)  { s.log.Info(msg) }
func (s sink) Warn(msg string)  { s.log.Warn(msg) }
func (s sink) Error(msg string) { s.log.Error(nil, msg) }
