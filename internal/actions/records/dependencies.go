package records

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/ui"
)

type Deps struct {
	Call         func(ctx context.Context, sess *domain.Session, model, method string, args []any, kwargs map[string]any) (json.RawMessage, error)
	RecordCall   func(domain.CallRecord) error
	NewRequestID func() string
	Now          func() time.Time
	Highlight    func(raw []byte) string
	Pager        func(string)
	Println      func(...any) (int, error)
	Success      func(string) string
	Logger       domain.Logger
}

// DefaultDeps wires the handlers to the application's remote client,
// history store and output.
func DefaultDeps(app *domain.Application) Deps {
	return Deps{
		Call:         app.Remote.Call,
		RecordCall:   app.History.RecordCall,
		NewRequestID: uuid.NewString,
		Now:          time.Now,
		Highlight: func(raw []byte) string {
			styleName := ui.NoHighlight
			if app.Styler.Enabled() {
				if name, ok := app.Config.Get("highlight"); ok {
					styleName = name
				}
			}
			return ui.FormatJSON(raw, styleName)
		},
		Pager:   app.Output.Pager,
		Println: app.Output.Println,
		Success: app.Styler.Success,
		Logger:  app.Logger,
	}
}
