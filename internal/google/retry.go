package google

import (
    "context"
    "fmt"
)

// RefreshError marks a failed refresh-token exchange. Unlike a plain send
// failure it is fatal for the whole in-flight operation, so callers can
// tell the two apart with errors.As.
type RefreshError struct {
    Err error
}

func (e *RefreshError) Error() string {
    return fmt.Sprintf("token refresh failed: %v", e.Err)
}

func (e *RefreshError) Unwrap() error {
    return e.Err
}

// DoWithAuthRetry runs call with the current access token and, if the
// provider rejects it as unauthorized, refreshes once and runs call one
// more time. A second failure is returned as-is; no further retries.
//
// refresh returns the fresh access token, or "" when no refresh token is
// on file (in which case the original error stands). token is updated in
// place so a batch caller keeps using the refreshed token for later items.
func DoWithAuthRetry(ctx context.Context, token *string, refresh func(context.Context) (string, error), call func(accessToken string) error) error {
    err := call(*token)
    if err == nil || !IsUnauthorized(err) {
        return err
    }

    fresh, rerr := refresh(ctx)
    if rerr != nil {
        return &RefreshError{Err: rerr}
    }
    if fresh == "" {
        return err
    }

    *token = fresh
    return call(fresh)
}
