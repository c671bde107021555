package errs

// Kind is the caller-facing failure category carried by every error that
// leaves the usecase layer.
type Kind string

const (
	KindInvalidArgument    Kind = "INVALID_ARGUMENT"
	KindNotFound           Kind = "NOT_FOUND"
	KindFailedPrecondition Kind = "FAILED_PRECONDITION"
	KindPermissionDenied   Kind = "PERMISSION_DENIED"
	KindInternal           Kind = "INTERNAL"
)

// Kind markers. Sentinels are marked at the point of return, never at declaration,
// so that Is against one sentinel does not match a sibling of the same kind.
var (
	ErrInvalidArgument    = New("invalid argument")
	ErrNotFound           = New("not found")
	ErrFailedPrecondition = New("failed precondition")
	ErrPermissionDenied   = New("permission denied")
	ErrInternal           = New("internal error")
)

func InvalidArgument(err error) error    { return Mark(err, ErrInvalidArgument) }
func NotFound(err error) error           { return Mark(err, ErrNotFound) }
func FailedPrecondition(err error) error { return Mark(err, ErrFailedPrecondition) }
func PermissionDenied(err error) error   { return Mark(err, ErrPermissionDenied) }

// KindOf classifies err. Anything without a kind marker is Internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case Is(err, ErrNotFound):
		return KindNotFound
	case Is(err, ErrFailedPrecondition):
		return KindFailedPrecondition
	case Is(err, ErrPermissionDenied):
		return KindPermissionDenied
	default:
		return KindInternal
	}
}
