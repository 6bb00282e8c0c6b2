// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// MultiError is an error made of several non-nil errors. It is only created by
// Multi, and never holds fewer than two errors or another MultiError.
type MultiError struct {
	Errors []error
}

// Multi combines errors. Nil errors are dropped. The result is nil if nothing
// is left, the only error if one is left, and a *MultiError otherwise.
//
// Errors that are themselves *MultiError are flattened, so these two calls
// return equal values:
//
//	Multi(Multi(err1, err2), Multi(err3, err4))
//	Multi(err1, err2, err3, err4)
func Multi(errs ...error) error {
	var all []error
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case *MultiError:
			all = append(all, err.Errors...)
		default:
			all = append(all, err)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return &MultiError{all}
}

// Error joins the messages of all parts.
func (me *MultiError) Error() string {
	msgs := make([]string, len(me.Errors))
	for i, err := range me.Errors {
		msgs[i] = err.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

// Unwrap returns the parts, so that errors.Is and errors.As look into each of
// them.
func (me *MultiError) Unwrap() []error { return me.Errors }
