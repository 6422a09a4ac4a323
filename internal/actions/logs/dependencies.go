package logs

import (
	"os"
	"time"

	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/paths"
)

type Deps struct {
	LogFilePath  func() string
	ReadFile     func(string) ([]byte, error)
	WriteFile    func(string, []byte, os.FileMode) error
	Stat         func(string) (os.FileInfo, error)
	OpenFile     func(string, int, os.FileMode) (*os.File, error)
	Println      func(...any) (int, error)
	Pager        func(string)
	Styler       domain.Styler
	PollInterval time.Duration
}

func DefaultDeps(app *domain.Application) Deps {
	return Deps{
		LogFilePath:  paths.LogFilePath,
		ReadFile:     os.ReadFile,
		WriteFile:    os.WriteFile,
		Stat:         os.Stat,
		OpenFile:     os.OpenFile,
		Println:      app.Output.Println,
		Pager:        app.Output.Pager,
		Styler:       app.Styler,
		PollInterval: 500 * time.Millisecond,
	}
}
