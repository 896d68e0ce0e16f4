// internal/model/client.go
package model

import "time"

type Client struct {
    ID        string     `db:"id" json:"id"`
    UserID    string     `db:"user_id" json:"user_id"`
    Name      string     `db:"name" json:"name"`
    Email     string     `db:"email" json:"email"`
    Phone     string     `db:"phone" json:"phone,omitempty"`
    Notes     string     `db:"notes" json:"notes,omitempty"`
    CreatedAt time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
