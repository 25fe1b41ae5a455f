package forecast

import (
	"time"

	"github.com/goodsign/monday"
)

const locale = monday.LocaleEsES

// FormatDay renders a YYYY-MM-DD day header, e.g. "sábado, 1 de junio de 2024".
// Unparseable dates are returned unchanged.
func FormatDay(date string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return date
	}
	return monday.Format(t, "Monday, 2 de January de 2006", locale)
}

// FormatSlotTime renders the HH:MM of a window in the display timezone.
func FormatSlotTime(ts string, loc *time.Location) string {
	t, err := ParseWindowTime(ts, loc)
	if err != nil {
		return ts
	}
	return t.Format("15:04")
}

// FormatDateTime renders the full heading of a window, e.g. "sábado, 1 de junio, 09:00".
func FormatDateTime(ts string, loc *time.Location) string {
	t, err := ParseWindowTime(ts, loc)
	if err != nil {
		return ts
	}
	return monday.Format(t, "Monday, 2 de January, 15:04", locale)
}
