package repository

import (
    "database/sql"
    "time"

    "github.com/google/uuid"

    "github.com/clientdesk/clientdesk-backend/internal/model"
)

// EmailLogRepositoryInterface defines the append-only delivery log
type EmailLogRepositoryInterface interface {
    Create(entry *model.EmailLog) error
    ListByUser(userID string, limit int) ([]model.EmailLog, error)
    CountByUser(userID string) (int, error)
}

type EmailLogRepository struct {
    DB *sql.DB
}

// Create inserts one send-attempt record. Rows are never updated after this.
func (r *EmailLogRepository) Create(entry *model.EmailLog) error {
    entry.ID = uuid.NewString()
    entry.CreatedAt = time.Now()

    query := `
        INSERT INTO email_logs (id, user_id, to_email, subject, body, gmail_message_id, success, error_message, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
    _, err := r.DB.Exec(query,
        entry.ID,
        entry.UserID,
        entry.ToEmail,
        entry.Subject,
        entry.Body,
        nullString(entry.GmailMessageID),
        entry.Success,
        nullString(entry.ErrorMessage),
        entry.CreatedAt,
    )
    return err
}

// ListByUser returns the most recent log entries for a user
func (r *EmailLogRepository) ListByUser(userID string, limit int) ([]model.EmailLog, error) {
    if limit < 1 {
        limit = 50
    }
    query := `
        SELECT id, user_id, to_email, subject, body, gmail_message_id, success, error_message, created_at
        FROM email_logs
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
    rows, err := r.DB.Query(query, userID, limit)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    logs := []model.EmailLog{}
    for rows.Next() {
        var e model.EmailLog
        var msgID, errMsg sql.NullString
        if err := rows.Scan(&e.ID, &e.UserID, &e.ToEmail, &e.Subject, &e.Body, &msgID, &e.Success, &errMsg, &e.CreatedAt); err != nil {
            return nil, err
        }
        e.GmailMessageID = msgID.String
        e.ErrorMessage = errMsg.String
        logs = append(logs, e)
    }
    return logs, rows.Err()
}

// CountByUser counts successfully delivered emails for the dashboard
func (r *EmailLogRepository) CountByUser(userID string) (int, error) {
    var count int
    err := r.DB.QueryRow(
        `SELECT COUNT(*) FROM email_logs WHERE user_id = $1 AND success = TRUE`,
        userID,
    ).Scan(&count)
    return count, err
}

var _ EmailLogRepositoryInterface = (*EmailLogRepository)(nil)
