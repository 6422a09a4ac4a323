package odoo

import (
	"encoding/json"
	"fmt"
)

// AuthError is returned when the login form is unavailable or rejects the
// credentials.
type AuthError struct {
	URL        string
	StatusCode int
	Reason     string
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("odoo: login to %s failed (%d): %s", e.URL, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("odoo: login to %s failed: %s", e.URL, e.Reason)
}

// RemoteError is returned when call_kw answers with a non-200 status or a
// JSON-RPC error member. Detail keeps the raw body for display.
type RemoteError struct {
	StatusCode int
	Code       int
	Message    string
	Name       string
	Detail     string
}

func (e *RemoteError) Error() string {
	switch {
	case e.Name != "":
		return fmt.Sprintf("odoo: %s: %s", e.Name, e.Message)
	case e.Message != "":
		return fmt.Sprintf("odoo: remote error (%d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("odoo: remote error (%d)", e.StatusCode)
	}
}

// rpcError is the JSON-RPC error member Odoo sends.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"data"`
}

func newRemoteError(status int, body []byte, rpc *rpcError) *RemoteError {
	e := &RemoteError{StatusCode: status, Detail: string(body)}
	if rpc == nil {
		var envelope struct {
			Error *rpcError `json:"error"`
		}
		if json.Unmarshal(body, &envelope) == nil {
			rpc = envelope.Error
		}
	}
	if rpc != nil {
		e.Code = rpc.Code
		e.Message = rpc.Message
		e.Name = rpc.Data.Name
		if rpc.Data.Message != "" {
			e.Message = rpc.Data.Message
		}
	}
	return e
}
