package odoo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/odoo-term/odterm/internal/domain"
)

// ErrNoSession is returned by Call when the session never logged in.
var ErrNoSession = errors.New("odoo: session is not connected")

type callParams struct {
	Model  string         `json:"model"`
	Method string         `json:"method"`
	Args   []any          `json:"args"`
	Kwargs map[string]any `json:"kwargs"`
}

type rpcRequest struct {
	ID      string     `json:"id"`
	JSONRPC string     `json:"jsonrpc"`
	Method  string     `json:"method"`
	Params  callParams `json:"params"`
}

type rpcResponse struct {
	ID     json.RawMessage `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Call invokes method on model through /web/dataset/call_kw and returns
// the raw JSON result member. Nil args and kwargs are sent as [] and {}.
func (c *Client) Call(ctx context.Context, sess *domain.Session, model, method string, args []any, kwargs map[string]any) (json.RawMessage, error) {
	if !sess.Connected() {
		return nil, ErrNoSession
	}
	if args == nil {
		args = []any{}
	}
	if kwargs == nil {
		kwargs = map[string]any{}
	}

	id, ok := requestIDFrom(ctx)
	if !ok {
		id = uuid.NewString()
	}

	payload, err := json.Marshal(rpcRequest{
		ID:      id,
		JSONRPC: "2.0",
		Method:  "call",
		Params:  callParams{Model: model, Method: method, Args: args, Kwargs: kwargs},
	})
	if err != nil {
		return nil, fmt.Errorf("odoo: encode %s.%s: %w", model, method, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(sess.BaseURL, callKwPath), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("odoo: build call request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, body, err := c.do(c.httpClient(sess.Jar), request)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		return nil, newRemoteError(response.StatusCode, body, nil)
	}

	var decoded rpcResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &RemoteError{StatusCode: response.StatusCode, Message: "response is not JSON-RPC", Detail: string(body)}
	}
	if decoded.Error != nil {
		return nil, newRemoteError(response.StatusCode, body, decoded.Error)
	}

	c.logger.Debug("odoo: %s.%s ok (id=%s)", model, method, id)
	return decoded.Result, nil
}
