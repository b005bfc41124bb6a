package world

// Code is the outcome of an action directive. Failures are expected,
// high-frequency results, not Go errors: callers branch on the code.
type Code int

const (
	OK Code = iota
	// ErrNotInRange is the only failure that is also a normal
	// outcome: the caller should move instead of giving up.
	ErrNotInRange
	ErrNotEnough
	ErrFull
	ErrInvalidTarget
	ErrBusy
	ErrNoBodypart
	ErrNameExists
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case ErrNotInRange:
		return "E_NOT_IN_RANGE"
	case ErrNotEnough:
		return "E_NOT_ENOUGH"
	case ErrFull:
		return "E_FULL"
	case ErrInvalidTarget:
		return "E_INVALID_TARGET"
	case ErrBusy:
		return "E_BUSY"
	case ErrNoBodypart:
		return "E_NO_BODYPART"
	case ErrNameExists:
		return "E_NAME_EXISTS"
	}
	return "E_UNKNOWN"
}
