package pkg

import "fmt"

// AppError is an error that knows how it is reported over HTTP.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	// Hint tells the client what to do next, e.g. "reconcile".
	Hint string
}

// HTTPError is the JSON body of every error response.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func (e *AppError) WithHint(hint string) *AppError {
	e.Hint = hint
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError renders the response body. The wrapped error text is only
// exposed for client errors; server errors keep their cause in the logs.
func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code, Message: e.Message, Hint: e.Hint}
	if e.Err != nil && e.HTTPStatus < 500 {
		out.Detail = e.Err.Error()
	}
	return out
}
