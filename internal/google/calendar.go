package google

import (
    "context"
    "time"

    "golang.org/x/oauth2"
    "google.golang.org/api/calendar/v3"
    "google.golang.org/api/option"

    "github.com/clientdesk/clientdesk-backend/internal/model"
)

const maxCalendarResults = 50

// CalendarAPI lists events from the user's primary calendar.
type CalendarAPI struct{}

func (CalendarAPI) List(ctx context.Context, accessToken string, timeMin, timeMax time.Time) ([]model.CalendarEvent, error) {
    svc, err := calendar.NewService(ctx, option.WithTokenSource(
        oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
    ))
    if err != nil {
        return nil, err
    }

    res, err := svc.Events.List("primary").
        SingleEvents(true).
        OrderBy("startTime").
        TimeMin(timeMin.Format(time.RFC3339)).
        TimeMax(timeMax.Format(time.RFC3339)).
        MaxResults(maxCalendarResults).
        Context(ctx).
        Do()
    if err != nil {
        return nil, err
    }

    events := []model.CalendarEvent{}
    for _, e := range res.Items {
        events = append(events, model.CalendarEvent{
            ID:          e.Id,
            Summary:     e.Summary,
            Description: e.Description,
            Start:       eventTime(e.Start),
            End:         eventTime(e.End),
        })
    }
    return events, nil
}

// eventTime prefers the timed value and falls back to the all-day date.
func eventTime(t *calendar.EventDateTime) string {
    if t == nil {
        return ""
    }
    if t.DateTime != "" {
        return t.DateTime
    }
    return t.Date
}
