// internal/model/calendar_event.go
package model

// CalendarEvent is the trimmed-down event shape returned to the UI.
// Start and End are RFC3339 timestamps for timed events or YYYY-MM-DD
// dates for all-day events, exactly as Google returns them.
type CalendarEvent struct {
    ID          string `json:"id"`
    Summary     string `json:"summary,omitempty"`
    Description string `json:"description,omitempty"`
    Start       string `json:"start,omitempty"`
    End         string `json:"end,omitempty"`
}
