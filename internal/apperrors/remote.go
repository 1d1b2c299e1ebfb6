package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// RemoteError is the uniform failure payload returned by every remote call.
// Payload holds the decoded error body (usually map[string]any or string),
// or the transport error message when no response body was available.
type RemoteError struct {
	Status  int `json:"status"`
	Payload any `json:"payload"`
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", ErrRemote.Error(), e.Message("no response"))
	}
	return fmt.Sprintf("%s (HTTP %d): %s", ErrRemote.Error(), e.Status, e.Message(http.StatusText(e.Status)))
}

// Is reports ErrRemote for every RemoteError and ErrUnauthorized for 401s.
func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrRemote:
		return true
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// NewRemoteError decodes body as JSON when possible and keeps it verbatim otherwise.
func NewRemoteError(status int, body []byte) *RemoteError {
	re := &RemoteError{Status: status}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		re.Payload = http.StatusText(status)
		return re
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		re.Payload = decoded
		return re
	}
	re.Payload = trimmed
	return re
}

// NewTransportError wraps an error raised before any response was received.
func NewTransportError(err error) *RemoteError {
	return &RemoteError{Payload: err.Error()}
}

// AsRemote extracts a *RemoteError from err, if any.
func AsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// Message renders the payload for display. Field keyed messages are joined one
// per line (sorted by field), non_field_errors without a prefix. Falls back to
// a detail field, then a plain string payload, then generic.
func (e *RemoteError) Message(generic string) string {
	switch p := e.Payload.(type) {
	case string:
		if p != "" {
			return p
		}
	case map[string]any:
		if msg := fieldMessages(p); msg != "" {
			return msg
		}
		if detail := flatten(p["detail"]); detail != "" {
			return detail
		}
	case []any:
		if msg := flatten(p); msg != "" {
			return msg
		}
	}
	return generic
}

func fieldMessages(p map[string]any) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		if k == "detail" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		text := flatten(p[k])
		if text == "" {
			continue
		}
		if k == "non_field_errors" {
			lines = append(lines, text)
			continue
		}
		lines = append(lines, k+": "+text)
	}
	return strings.Join(lines, "\n")
}

func flatten(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		return fieldMessages(t)
	default:
		return fmt.Sprint(t)
	}
}
