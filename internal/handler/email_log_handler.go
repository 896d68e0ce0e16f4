// internal/handler/email_log_handler.go
package handler

import (
    "net/http"
    "strconv"

    "github.com/clientdesk/clientdesk-backend/internal/repository"
)

type EmailLogHandler struct {
    Repo repository.EmailLogRepositoryInterface
}

// ListLogs returns the most recent send attempts for the user
func (h *EmailLogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
    userID := requireUser(w, r)
    if userID == "" {
        return
    }

    limit := 50
    if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
        if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
            limit = l
        }
    }

    logs, err := h.Repo.ListByUser(userID, limit)
    if err != nil {
        http.Error(w, "failed to fetch email logs: "+err.Error(), http.StatusInternalServerError)
        return
    }
    writeJSON(w, map[string]interface{}{"data": logs})
}

// CountLogs returns the number of successfully sent emails
func (h *EmailLogHandler) CountLogs(w http.ResponseWriter, r *http.Request) {
    userID := requireUser(w, r)
    if userID == "" {
        return
    }

    count, err := h.Repo.CountByUser(userID)
    if err != nil {
        http.Error(w, "failed to count email logs: "+err.Error(), http.StatusInternalServerError)
        return
    }
    writeJSON(w, map[string]interface{}{"data": map[string]int{"sent": count}})
}
