// internal/service/calendar_service.go
package service

import (
    "context"
    "time"

    "github.com/clientdesk/clientdesk-backend/internal/google"
    "github.com/clientdesk/clientdesk-backend/internal/model"
)

// EventLister is the provider calendar-list call.
type EventLister interface {
    List(ctx context.Context, accessToken string, timeMin, timeMax time.Time) ([]model.CalendarEvent, error)
}

// CalendarService lists a bounded window of the user's calendar events,
// sharing the one-shot refresh-and-retry plumbing with the mail path.
type CalendarService struct {
    Tokens TokenManager
    Events EventLister
}

func (s *CalendarService) GetEvents(ctx context.Context, userID string, timeMin, timeMax time.Time) ([]model.CalendarEvent, error) {
    token, err := s.Tokens.GetValidAccessToken(ctx, userID)
    if err != nil {
        return nil, err
    }
    // Never connected: nothing to list.
    if token == "" {
        return []model.CalendarEvent{}, nil
    }

    var events []model.CalendarEvent
    err = google.DoWithAuthRetry(ctx, &token, providerRefresh(s.Tokens, userID), func(accessToken string) error {
        var lerr error
        events, lerr = s.Events.List(ctx, accessToken, timeMin, timeMax)
        return lerr
    })
    if err != nil {
        return nil, err
    }
    return events, nil
}
