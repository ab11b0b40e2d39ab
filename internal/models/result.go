package models

// Result is what the CLI prints in JSON mode. Output is set on every
// success that printed a value, even an empty one.
type Result struct {
	Success   bool    `json:"success"`
	Operation string  `json:"operation"`
	Scheme    string  `json:"scheme,omitempty"`
	Output    *string `json:"output,omitempty"`
	File      string  `json:"file,omitempty"`
	Code      string  `json:"code,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// NewResult builds a success result.
func NewResult(op, scheme, output string) *Result {
	return &Result{
		Success:   true,
		Operation: op,
		Scheme:    scheme,
		Output:    &output,
	}
}

// NewErrorResult builds a failure result from err.
func NewErrorResult(op, scheme string, err error) *Result {
	return &Result{
		Success:   false,
		Operation: op,
		Scheme:    scheme,
		Code:      CodeFor(err),
		Error:     err.Error(),
	}
}

// NewFileResult builds a success result whose output went to path.
func NewFileResult(op, scheme, path string) *Result {
	return &Result{
		Success:   true,
		Operation: op,
		Scheme:    scheme,
		File:      path,
	}
}
