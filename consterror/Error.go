package consterror

/*
	Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.

		TL;DR:
			const ErrSomething consterror.Error = "something is an error"

*/
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

// Is reports whether target is the same constant error,
// so wrapped constant errors can be matched with errors.Is.
func (err Error) Is(target error) bool {
	other, ok := target.(Error)
	return ok && other == err
}
