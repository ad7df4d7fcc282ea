package macro

// notApplicablePrefix is prepended to every reason reported to the user.
const notApplicablePrefix = "This macro is not applicable: "

// NotApplicableError is returned when an annotated declaration does not meet the
// preconditions of the macro applied to it. It is the only error kind a macro returns.
type NotApplicableError struct {
	Reason string
}

// NotApplicable returns a NotApplicableError for the given reason.
func NotApplicable(reason string) error {
	return &NotApplicableError{Reason: reason}
}

func (e *NotApplicableError) Error() string {
	return notApplicablePrefix + e.Reason
}
