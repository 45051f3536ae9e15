package status

import (
	"runtime"
	"strings"
)

// LeveledLogger is the sink surface a Result logs into: one independent sink
// per severity. Any-severity messages are routed to the info sink.
type LeveledLogger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Log emits every message, in insertion order, to the sink matching its
// severity. origin labels the logical operation that produced the Result and
// prefixes each line; when empty it is inferred from the calling function's
// name.
func (r *Result) Log(lg LeveledLogger, origin string) *Result {
	if lg == nil {
		return r
	}
	if origin == "" {
		origin = callerName(1)
	}
	for _, m := range r.messages {
		line := prefixed(origin, m.Text)
		switch m.Severity {
		case SeverityWarning:
			lg.Warn(line)
		case SeverityError:
			lg.Error(line)
		default:
			lg.Info(line)
		}
	}
	return r
}

// LogTo emits every message, in insertion order, to a single sink regardless
// of severity. Each line carries the severity name so no information is
// lost. origin behaves as in Log.
func (r *Result) LogTo(sink func(msg string), origin string) *Result {
	if sink == nil {
		return r
	}
	if origin == "" {
		origin = callerName(1)
	}
	for _, m := range r.messages {
		sink(prefixed(origin, m.String()))
	}
	return r
}

// LogAllMessages emits header (when non-empty), then one line per message in
// insertion order, then footer (when non-empty), all to the given sink.
func (r *Result) LogAllMessages(sink func(msg string), header, footer string) *Result {
	if sink == nil {
		return r
	}
	if header != "" {
		sink(header)
	}
	for _, m := range r.messages {
		sink(m.String())
	}
	if footer != "" {
		sink(footer)
	}
	return r
}

func prefixed(origin, text string) string {
	if origin == "" {
		return text
	}
	return origin + ": " + text
}

// callerName resolves the short name of the function that called into the
// logging API, skipping the given number of frames on top of callerName
// itself. CallersFrames is used so inlined frames resolve correctly.
func callerName(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	name := frame.Function
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
