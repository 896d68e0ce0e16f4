// internal/model/template.go
package model

import "time"

type EmailTemplate struct {
    ID        string     `db:"id" json:"id"`
    UserID    string     `db:"user_id" json:"user_id"`
    Name      string     `db:"name" json:"name"`
    Subject   string     `db:"subject" json:"subject"`
    Body      string     `db:"body" json:"body"`
    CreatedAt time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
