package retell

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrTransport marks failures to reach the platform at all
var ErrTransport = errors.New("voice platform unreachable")

// APIError is a request the platform answered but rejected
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("voice platform returned status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a platform 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// errorBody covers the shapes the platform uses for error messages
type errorBody struct {
	ErrorMessage string `json:"error_message"`
	Message      string `json:"message"`
	Error        string `json:"error"`
}

func newAPIError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	msg := ""
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.ErrorMessage != "":
			msg = body.ErrorMessage
		case body.Message != "":
			msg = body.Message
		case body.Error != "":
			msg = body.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
