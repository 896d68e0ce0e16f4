// internal/controller/calendar_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "time"

    "github.com/clientdesk/clientdesk-backend/internal/service"
)

type CalendarController struct {
    Calendar *service.CalendarService
}

func (c *CalendarController) ListEvents(w http.ResponseWriter, r *http.Request) {
    userID := r.Header.Get("X-User-ID")
    if userID == "" {
        http.Error(w, "Unauthorized", http.StatusUnauthorized)
        return
    }

    timeMin, err := time.Parse(time.RFC3339, r.URL.Query().Get("timeMin"))
    if err != nil {
        http.Error(w, "invalid timeMin", http.StatusBadRequest)
        return
    }
    timeMax, err := time.Parse(time.RFC3339, r.URL.Query().Get("timeMax"))
    if err != nil {
        http.Error(w, "invalid timeMax", http.StatusBadRequest)
        return
    }

    events, err := c.Calendar.GetEvents(r.Context(), userID, timeMin, timeMax)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{"data": events})
}
