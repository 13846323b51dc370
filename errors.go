package lowpoly

import "fmt"

// ConfigError reports an invalid pipeline parameter. Parameters are
// validated in full before any processing, so a ConfigError implies the
// input mesh was never touched.
type ConfigError struct {
	// Param is the offending parameter name, e.g. "factor".
	Param string
	msg   string
}

func (e *ConfigError) Error() string {
	return "lowpoly: invalid " + e.Param + ": " + e.msg
}

func configErrf(param, format string, args ...any) *ConfigError {
	return &ConfigError{Param: param, msg: fmt.Sprintf(format, args...)}
}

// InputError reports a malformed input mesh, such as a face index out of
// range or per-vertex arrays of mismatched length.
type InputError struct {
	// Index is the offending face or array index.
	Index int
	msg   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("lowpoly: bad input mesh at index %d: %s", e.Index, e.msg)
}

func inputErrf(index int, format string, args ...any) *InputError {
	return &InputError{Index: index, msg: fmt.Sprintf(format, args...)}
}
