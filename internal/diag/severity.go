package diag

// Severity of a diagnostic. Translator errors are SevError; findings such as
// a redeclared LOCAL are SevWarning and never stop translation.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning // не мешает генерации
	SevError   // программа отбрасывается
)

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
