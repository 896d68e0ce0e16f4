// internal/service/gmail_service.go
package service

import (
    "context"
    "encoding/base64"
    "errors"
    "fmt"
    "log"
    "strings"

    "golang.org/x/time/rate"

    "github.com/clientdesk/clientdesk-backend/internal/google"
    "github.com/clientdesk/clientdesk-backend/internal/model"
    "github.com/clientdesk/clientdesk-backend/internal/repository"
)

// TokenManager is the slice of TokenService the dispatchers need.
type TokenManager interface {
    GetValidAccessToken(ctx context.Context, userID string) (string, error)
    Refresh(ctx context.Context, userID string) (string, error)
}

var _ TokenManager = (*TokenService)(nil)

// MailSender is the provider send call. The returned id is Gmail's message
// id and may be empty on success.
type MailSender interface {
    Send(ctx context.Context, accessToken, raw string) (string, error)
}

// GmailService sends templated emails one recipient at a time and records
// every attempt in the delivery log.
type GmailService struct {
    Tokens  TokenManager
    Logs    repository.EmailLogRepositoryInterface
    Sender  MailSender
    Limiter *rate.Limiter // optional send pacing, nil disables
}

// SendBulkPerRecipient sends one personalized message per item. The batch
// is strictly sequential and a failing recipient never stops it; the only
// abort condition is a failed token refresh, which returns the results
// accumulated so far together with the error. Results preserve input order.
func (s *GmailService) SendBulkPerRecipient(ctx context.Context, userID, fromEmail string, items []model.SendItem) ([]model.SendResult, error) {
    results := []model.SendResult{}
    if len(items) == 0 {
        return results, nil
    }

    token, err := s.Tokens.GetValidAccessToken(ctx, userID)
    if err != nil {
        return nil, err
    }

    for _, it := range items {
        if s.Limiter != nil {
            if err := s.Limiter.Wait(ctx); err != nil {
                return results, err
            }
        }

        r, err := s.sendOne(ctx, userID, fromEmail, it.Email, it.Subject, it.Body, &token)
        if err != nil {
            return results, err
        }
        results = append(results, r)
    }
    return results, nil
}

// sendOne performs a single dispatch: build the message, call Gmail,
// retry exactly once after a fresh token on a 401, and write exactly one
// delivery-log row whatever the outcome. The returned error is non-nil
// only for a failed refresh exchange, which is fatal for the batch.
func (s *GmailService) sendOne(ctx context.Context, userID, from, to, subject, body string, token *string) (model.SendResult, error) {
    raw := encodeMessage(buildMIMEMessage(from, to, subject, body))

    var id string
    err := google.DoWithAuthRetry(ctx, token, providerRefresh(s.Tokens, userID), func(accessToken string) error {
        var serr error
        id, serr = s.Sender.Send(ctx, accessToken, raw)
        return serr
    })

    var refreshErr *google.RefreshError
    if errors.As(err, &refreshErr) {
        return model.SendResult{}, err
    }

    entry := &model.EmailLog{
        UserID:  userID,
        ToEmail: to,
        Subject: subject,
        Body:    body,
    }
    if err != nil {
        entry.ErrorMessage = err.Error()
    } else {
        entry.Success = true
        entry.GmailMessageID = id
    }
    // Losing an audit row is preferable to failing a send the provider
    // already accepted, so log-write errors are not propagated.
    if lerr := s.Logs.Create(entry); lerr != nil {
        log.Println("⚠️ failed to write email log:", lerr)
    }

    if err != nil {
        return model.SendResult{Email: to, Success: false, Error: err.Error()}, nil
    }
    return model.SendResult{Email: to, Success: true, ID: id}, nil
}

// providerRefresh adapts the token manager to the retry helper. A missing
// refresh token is not an error here, it just means no retry is possible
// and the original provider error stands.
func providerRefresh(tokens TokenManager, userID string) func(context.Context) (string, error) {
    return func(ctx context.Context) (string, error) {
        fresh, err := tokens.Refresh(ctx, userID)
        if errors.Is(err, ErrNoRefreshToken) {
            return "", nil
        }
        return fresh, err
    }
}

// buildMIMEMessage assembles the plaintext RFC 822 envelope Gmail expects.
func buildMIMEMessage(from, to, subject, body string) string {
    lines := []string{
        fmt.Sprintf("From: %s", from),
        fmt.Sprintf("To: %s", to),
        fmt.Sprintf("Subject: %s", subject),
        "MIME-Version: 1.0",
        "Content-Type: text/plain; charset=UTF-8",
        "",
        body,
    }
    return strings.Join(lines, "\r\n")
}

// encodeMessage applies Gmail's transport encoding: URL-safe base64
// without padding.
func encodeMessage(msg string) string {
    return base64.RawURLEncoding.EncodeToString([]byte(msg))
}
