package table

import "fmt"

// LoadError reports that an input stream could not be read as a spreadsheet
type LoadError struct {
	Reason string
	Cause  error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load spreadsheet: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("load spreadsheet: %s", e.Reason)
}

// Unwrap allows errors.Is and errors.As to see the cause
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ColumnError reports a column reference that does not resolve
type ColumnError struct {
	Column    string
	Parameter string
	Available []string
}

// Error implements the error interface
func (e *ColumnError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("column %q (%s) not found in table", e.Column, e.Parameter)
	}
	return fmt.Sprintf("column %q not found in table", e.Column)
}

// ParameterError reports an operation argument that cannot be interpreted,
// such as a cutoff date that does not parse.
type ParameterError struct {
	Parameter string
	Value     string
	Reason    string
}

// Error implements the error interface
func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Parameter, e.Value, e.Reason)
}
