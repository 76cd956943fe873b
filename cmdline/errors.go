package cmdline

// ErrorType categorizes the recoverable problems met while parsing.
type ErrorType string

const (
	ErrorTypeResponseFile  ErrorType = "response_file"
	ErrorTypeMalformedLine ErrorType = "malformed_line"
	ErrorTypeWildcard      ErrorType = "wildcard"
)

// ParseError describes a problem the parser recovered from. Parsing never
// fails; these are collected on the result and logged.
type ParseError struct {
	Type    ErrorType
	Message string
	Path    string // Response file or wildcard pattern involved
	Line    int    // 1-based line in the response file, 0 when not applicable
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, e.g. fs.ErrNotExist.
func (e *ParseError) Unwrap() error {
	return e.Err
}
