// internal/model/credential.go
package model

import "time"

// Credential holds the Google OAuth tokens stored for one user.
// AccessToken and RefreshToken are empty strings when the column is NULL.
type Credential struct {
    UserID       string     `db:"user_id" json:"user_id"`
    Provider     string     `db:"provider" json:"provider"`
    AccessToken  string     `db:"access_token" json:"-"`
    RefreshToken string     `db:"refresh_token" json:"-"`
    ExpiresAt    *time.Time `db:"expires_at" json:"expires_at,omitempty"`
    UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
