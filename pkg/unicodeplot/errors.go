package unicodeplot

import "fmt"

// ArgumentError reports arguments a plot cannot be drawn with.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

func argumentErrorf(format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}
