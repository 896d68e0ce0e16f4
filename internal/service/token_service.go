// internal/service/token_service.go
package service

import (
    "context"
    "errors"
    "time"

    "golang.org/x/oauth2"

    "github.com/clientdesk/clientdesk-backend/internal/model"
    "github.com/clientdesk/clientdesk-backend/internal/repository"
)

// expirySkew is the safety margin: a token expiring within this window is
// treated as already expired.
const expirySkew = 60 * time.Second

// ErrNoRefreshToken means the stored credential cannot be refreshed; the
// user has to go through the consent flow again.
var ErrNoRefreshToken = errors.New("no refresh token on file")

// TokenRefresher exchanges a refresh token at the provider's token endpoint
type TokenRefresher interface {
    RefreshAccessToken(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

// TokenService owns the refresh decision for stored Google credentials.
// It re-reads the store on every call; no token is cached in memory.
type TokenService struct {
    Tokens    repository.TokenRepositoryInterface
    Refresher TokenRefresher
}

// GetValidAccessToken returns an access token usable right now. A token
// with more than 60s of life left is returned without any network call;
// an expired one is refreshed and the new credential persisted. With no
// refresh token on file the stored (possibly stale) token is returned
// unchanged, since there is nothing else to try.
func (s *TokenService) GetValidAccessToken(ctx context.Context, userID string) (string, error) {
    cred, err := s.Tokens.Get(userID)
    if err != nil {
        return "", err
    }

    if cred.AccessToken != "" && cred.ExpiresAt != nil && time.Until(*cred.ExpiresAt) > expirySkew {
        return cred.AccessToken, nil
    }

    if cred.RefreshToken == "" {
        return cred.AccessToken, nil
    }

    return s.exchange(ctx, userID, cred.RefreshToken)
}

// Refresh always performs a refresh-token exchange, skipping the expiry
// fast-path. Used after the provider has rejected a token mid-operation.
func (s *TokenService) Refresh(ctx context.Context, userID string) (string, error) {
    cred, err := s.Tokens.Get(userID)
    if err != nil {
        return "", err
    }
    if cred.RefreshToken == "" {
        return "", ErrNoRefreshToken
    }
    return s.exchange(ctx, userID, cred.RefreshToken)
}

// exchange swaps the refresh token for a new access token and overwrites
// the credential row. The refresh token itself is carried over unchanged.
func (s *TokenService) exchange(ctx context.Context, userID, refreshToken string) (string, error) {
    tok, err := s.Refresher.RefreshAccessToken(ctx, refreshToken)
    if err != nil {
        return "", err
    }

    var expiresAt *time.Time
    if !tok.Expiry.IsZero() {
        e := tok.Expiry
        expiresAt = &e
    }

    cred := &model.Credential{
        UserID:       userID,
        AccessToken:  tok.AccessToken,
        RefreshToken: refreshToken,
        ExpiresAt:    expiresAt,
    }
    if err := s.Tokens.Upsert(userID, cred); err != nil {
        return "", err
    }

    return tok.AccessToken, nil
}
