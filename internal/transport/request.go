package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/agentstation/panelkit/pkg/constants"
	"github.com/agentstation/panelkit/pkg/errors"
	"github.com/agentstation/panelkit/pkg/logging"
)

// IsSuccess reports whether resp has a 2xx status.
func IsSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// JSONOptions returns request options carrying v as a JSON body.
func JSONOptions(method string, v any) (*Options, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WrapParse("json", "request body", err)
	}
	return &Options{
		Method: method,
		Body:   bytes.NewReader(body),
		Header: http.Header{"Content-Type": []string{"application/json"}},
	}, nil
}

// DecodeJSON reads and closes the response body and decodes it into target,
// whatever the status, returning the raw body. source names the data in
// errors (usually the path). A literal null is a parse error: it would
// leave target untouched.
func DecodeJSON(resp *http.Response, target any, source string) (json.RawMessage, error) {
	defer closeBody(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}

	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return body, errors.NewParseError("json", source, "unexpected null body", nil)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return body, errors.WrapParse("json", source, err)
	}

	return body, nil
}

// ErrorBody reads and closes the response body and returns it as trimmed
// text, truncated for use in error messages.
func ErrorBody(resp *http.Response) string {
	defer closeBody(resp)

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxErrorBodySize))
	if err != nil {
		return ""
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return msg
}

// Discard drains and closes the response body so the connection can be reused.
func Discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, constants.MaxErrorBodySize))
	closeBody(resp)
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		// Log warning but don't override the main error
		logging.Warn().Err(err).Msg("Failed to close response body")
	}
}
