package diag

// Severity ranks how serious a diagnostic is.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError aborts the rewrite of the file it was reported on.
	SevError
)

// Blocks reports whether this severity prevents rewritten output
// from being produced.
func (s Severity) Blocks() bool {
	return s >= SevError
}

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
