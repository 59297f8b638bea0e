package fluent

// Error is an error implementation that allows declaring exported
// error values with the const keyword:
//
//	const ErrSomething fluent.Error = "something went wrong"
type Error string

func (e Error) Error() string { return string(e) }

// ErrInvalidArgument is returned by constructors when a required
// argument is absent. Match with errors.Is.
const ErrInvalidArgument Error = "fluent: invalid argument"
