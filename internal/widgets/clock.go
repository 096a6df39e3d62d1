package widgets

import (
	"time"

	strftime "github.com/ncruces/go-strftime"

	"github.com/atomicstack/niri-panel/internal/registry"
)

// Clock renders the bar label and owns the calendar popover.
type Clock struct {
	*Popover
	format string
}

func NewClock(format string) *Clock {
	return &Clock{Popover: NewPopover(registry.Clock), format: format}
}

// Render formats now for the bar label using the configured strftime format.
func (c *Clock) Render(now time.Time) string {
	return strftime.Format(c.format, now)
}

// NextTick returns when the label next needs repainting, at the top of the
// following minute.
func (c *Clock) NextTick(now time.Time) time.Time {
	return now.Truncate(time.Minute).Add(time.Minute)
}
