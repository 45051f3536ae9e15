package status

// Severity classifies an individual diagnostic message. It says what kind of
// note a message is, not what the overall verdict of the operation becomes;
// that is the job of Code.
type Severity int

const (
	// SeverityAny is a wildcard used when querying or removing messages.
	// It matches every severity. Storing it on a message is legal but
	// unusual; logging routes such messages to the info sink.
	SeverityAny Severity = iota
	// SeverityInfo marks purely informational messages.
	SeverityInfo
	// SeverityWarning marks messages about recoverable or tolerated issues.
	SeverityWarning
	// SeverityError marks messages describing a failure.
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityAny:
		return "any"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities serialize as
// their names in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
