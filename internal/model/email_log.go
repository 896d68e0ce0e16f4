// internal/model/email_log.go
package model

import "time"

// EmailLog is one row of the append-only send audit trail. Exactly one
// row is written per dispatch attempt; rows are never updated.
type EmailLog struct {
    ID             string    `db:"id" json:"id"`
    UserID         string    `db:"user_id" json:"user_id"`
    ToEmail        string    `db:"to_email" json:"to_email"`
    Subject        string    `db:"subject" json:"subject"`
    Body           string    `db:"body" json:"body"`
    GmailMessageID string    `db:"gmail_message_id" json:"gmail_message_id,omitempty"`
    Success        bool      `db:"success" json:"success"`
    ErrorMessage   string    `db:"error_message" json:"error_message,omitempty"`
    CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
