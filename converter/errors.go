package converter

import "fmt"

// ParseError reports input that could not be parsed as HTML. It is the only
// error Convert returns; everything past parsing degrades instead of
// failing.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse note html: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
