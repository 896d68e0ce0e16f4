// internal/controller/email_controller.go
package controller

import (
    "encoding/json"
    "net/http"

    "github.com/clientdesk/clientdesk-backend/internal/model"
    "github.com/clientdesk/clientdesk-backend/internal/service"
)

type EmailController struct {
    Gmail *service.GmailService
}

type recipientInput struct {
    Email string `json:"email"`
    Name  string `json:"name,omitempty"`
}

// sendEmailRequest accepts either pre-expanded per-recipient items or a
// single (recipients, subject, body) shape expanded per recipient with
// placeholder substitution.
type sendEmailRequest struct {
    Items      []model.SendItem `json:"items"`
    Recipients []recipientInput `json:"recipients"`
    Subject    string           `json:"subject"`
    Body       string           `json:"body"`
}

func (c *EmailController) SendEmails(w http.ResponseWriter, r *http.Request) {
    userID := r.Header.Get("X-User-ID")
    if userID == "" {
        http.Error(w, "Unauthorized", http.StatusUnauthorized)
        return
    }
    fromEmail := r.Header.Get("X-User-Email")
    if fromEmail == "" {
        fromEmail = "me"
    }

    var body sendEmailRequest
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    var results []model.SendResult
    var err error
    // An items key, even an empty array, selects the pre-expanded shape.
    if body.Items != nil {
        results, err = c.Gmail.SendBulkPerRecipient(r.Context(), userID, fromEmail, body.Items)
    } else {
        if len(body.Recipients) == 0 {
            http.Error(w, "select at least one recipient", http.StatusBadRequest)
            return
        }
        if body.Subject == "" || body.Body == "" {
            http.Error(w, "subject and body are required", http.StatusBadRequest)
            return
        }
        items := make([]model.SendItem, len(body.Recipients))
        for i, rec := range body.Recipients {
            vars := service.PlaceholderVars{ClientName: rec.Name, Email: rec.Email}
            items[i] = model.SendItem{
                Email:   rec.Email,
                Subject: service.ApplyPlaceholders(body.Subject, vars),
                Body:    service.ApplyPlaceholders(body.Body, vars),
            }
        }
        results, err = c.Gmail.SendBulkPerRecipient(r.Context(), userID, fromEmail, items)
    }
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    // Summary is derived here, not by the send loop.
    sent := 0
    failure := []map[string]string{}
    for _, res := range results {
        if res.Success {
            sent++
            continue
        }
        failure = append(failure, map[string]string{"email": res.Email, "error": res.Error})
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "data": map[string]interface{}{
            "sent":    sent,
            "total":   len(results),
            "results": results,
            "failure": failure,
        },
    })
}
