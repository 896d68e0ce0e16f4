package repository

import (
    "database/sql"
    "time"

    appErrors "github.com/clientdesk/clientdesk-backend/internal/errors"
    "github.com/clientdesk/clientdesk-backend/internal/model"
)

// TokenRepositoryInterface defines the credential store used by the token service
type TokenRepositoryInterface interface {
    Get(userID string) (*model.Credential, error)
    Upsert(userID string, cred *model.Credential) error
}

// TokenRepository persists one Google credential row per user
type TokenRepository struct {
    DB *sql.DB
}

// Get fetches the stored credential for a user
func (r *TokenRepository) Get(userID string) (*model.Credential, error) {
    query := `
        SELECT user_id, provider, access_token, refresh_token, expires_at, updated_at
        FROM user_tokens
        WHERE user_id = $1
    `
    var c model.Credential
    var access, refresh sql.NullString
    var expiresAt sql.NullTime
    err := r.DB.QueryRow(query, userID).Scan(&c.UserID, &c.Provider, &access, &refresh, &expiresAt, &c.UpdatedAt)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCredentialNotFound(userID)
        }
        return nil, err
    }
    c.AccessToken = access.String
    c.RefreshToken = refresh.String
    if expiresAt.Valid {
        t := expiresAt.Time
        c.ExpiresAt = &t
    }
    return &c, nil
}

// Upsert overwrites the credential row for a user (insert on first
// authorization, full overwrite on every refresh)
func (r *TokenRepository) Upsert(userID string, cred *model.Credential) error {
    query := `
        INSERT INTO user_tokens (user_id, provider, access_token, refresh_token, expires_at, updated_at)
        VALUES ($1, 'google', $2, $3, $4, $5)
        ON CONFLICT (user_id) DO UPDATE
        SET access_token=EXCLUDED.access_token,
            refresh_token=EXCLUDED.refresh_token,
            expires_at=EXCLUDED.expires_at,
            updated_at=EXCLUDED.updated_at
    `
    _, err := r.DB.Exec(query, userID,
        nullString(cred.AccessToken),
        nullString(cred.RefreshToken),
        cred.ExpiresAt,
        time.Now(),
    )
    return err
}

func nullString(s string) sql.NullString {
    return sql.NullString{String: s, Valid: s != ""}
}

var _ TokenRepositoryInterface = (*TokenRepository)(nil)
