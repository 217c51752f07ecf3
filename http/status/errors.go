package status

type HTTPError struct {
	Message string
	Code    Code
	// Page is the canned HTML body sent instead of any content.
	Page string
}

func NewError(code Code, message, page string) error {
	return HTTPError{
		Code:    code,
		Message: message,
		Page:    page,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrNotFound = NewError(
		NotFound, "file not found",
		"<html><body><h5>Error 404: File Not Found</h5></body></html>",
	)
	ErrMethodNotAllowed = NewError(
		MethodNotAllowed, "method not allowed",
		"<html><body><h5>Error 405: Method Not Allowed</h5></body></html>",
	)
)
