package records

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/odoo"
	"github.com/odoo-term/odterm/internal/usage"
)

// invoke performs one remote call and appends it to the call journal.
// A journal failure is logged and never masks the call's own result.
func invoke(ctx context.Context, sess *domain.Session, deps Deps, model, method string, args []any, kwargs map[string]any) (json.RawMessage, error) {
	requestID := deps.NewRequestID()
	start := deps.Now()

	result, err := deps.Call(odoo.WithRequestID(ctx, requestID), sess, model, method, args, kwargs)

	record := domain.CallRecord{
		RequestID: requestID,
		SessionID: sess.ID,
		Model:     model,
		Method:    method,
		Status:    domain.CallOK,
		Duration:  deps.Now().Sub(start),
		CreatedAt: start,
	}
	if err != nil {
		record.Status = domain.CallFailed
		record.Error = err.Error()

		var remoteErr *odoo.RemoteError
		if errors.As(err, &remoteErr) && deps.Logger != nil {
			deps.Logger.Debug("records: %s.%s failed: %s", model, method, remoteErr.Detail)
		}
	}

	if deps.RecordCall != nil {
		if jErr := deps.RecordCall(record); jErr != nil && deps.Logger != nil {
			deps.Logger.Warn("records: journal %s.%s: %v", model, method, jErr)
		}
	}

	return result, err
}

func requireSession(command string, sess *domain.Session) error {
	if !sess.Connected() {
		return usage.NotConnected(command)
	}
	return nil
}

// target reads the mandatory model flag shared by every record command.
func target(args *dispatchers.Arguments) (string, error) {
	return dispatchers.Value[string](args, "m", "model")
}
