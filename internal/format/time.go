package format

import (
	"strings"
	"time"

	"github.com/odoo-term/odterm/internal/config"
)

// Getter reads a config value. config.Get and domain.ConfigProvider.Get
// both satisfy it.
type Getter func(key string) (string, bool)

// Layout holds the Go time layouts resolved from display_date and
// display_time. Resolve it once per listing rather than per row.
type Layout struct {
	date      string
	dateShort string
	clock     string
	clockFull string
}

// NewLayout resolves layouts from get. A nil getter yields the defaults.
func NewLayout(get Getter) Layout {
	displayDate, displayTime := "", ""
	if get != nil {
		displayDate, _ = get("display_date")
		displayTime, _ = get("display_time")
	}
	if displayDate == "" {
		displayDate = "Jan 02"
	}

	l := Layout{
		date:      dateLayout(displayDate),
		dateShort: dateLayoutShort(displayDate),
		clock:     "15:04",
		clockFull: "15:04:05",
	}
	if displayTime == "12h" {
		l.clock = "3:04 PM"
		l.clockFull = "3:04:05 PM"
	}
	return l
}

// FromConfig resolves a Layout from the rc file.
func FromConfig() Layout {
	return NewLayout(config.Get)
}

// DateTime formats date and time, e.g. "23/01/2024 15:04".
func (l Layout) DateTime(t time.Time) string {
	return l.Date(t) + " " + l.Time(t)
}

// DateTimeShort formats date without year and time, e.g. "23/01 15:04".
func (l Layout) DateTimeShort(t time.Time) string {
	return t.Format(l.dateShort) + " " + l.Time(t)
}

// Date formats the date portion.
func (l Layout) Date(t time.Time) string {
	return t.Format(l.date)
}

// DateShort formats the date without year.
func (l Layout) DateShort(t time.Time) string {
	return t.Format(l.dateShort)
}

// Time formats the time portion.
func (l Layout) Time(t time.Time) string {
	return t.Format(l.clock)
}

// TimeFull formats the time with seconds.
func (l Layout) TimeFull(t time.Time) string {
	return t.Format(l.clockFull)
}

// Full formats date and time with seconds.
func (l Layout) Full(t time.Time) string {
	return l.Date(t) + " " + l.TimeFull(t)
}

// DateTime formats t using the rc file layouts.
func DateTime(t time.Time) string {
	return FromConfig().DateTime(t)
}

// Full formats t with seconds using the rc file layouts.
func Full(t time.Time) string {
	return FromConfig().Full(t)
}

func dateLayout(displayDate string) string {
	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// custom Go layout, e.g. "Jan 02"
		return displayDate
	}
}

func dateLayoutShort(displayDate string) string {
	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	default:
		short := displayDate
		short = strings.ReplaceAll(short, "2006", "")
		short = strings.ReplaceAll(short, "/06", "")
		short = strings.ReplaceAll(short, "-06", "")
		short = strings.ReplaceAll(short, " 06", "")
		short = strings.TrimSpace(short)
		short = strings.Trim(short, "/-")
		if short == "" {
			return "Jan 02"
		}
		return short
	}
}

// Duration renders a call duration compactly: "850ms", "1.2s".
func Duration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
