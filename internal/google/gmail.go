package google

import (
    "context"

    "golang.org/x/oauth2"
    "google.golang.org/api/gmail/v1"
    "google.golang.org/api/option"
)

// GmailAPI sends raw messages through the Gmail API, one service client
// per call signed with the supplied access token.
type GmailAPI struct{}

// Send submits a base64url-encoded RFC 822 message and returns the Gmail
// message id. The id may be empty on success; that is not an error.
func (GmailAPI) Send(ctx context.Context, accessToken, raw string) (string, error) {
    svc, err := gmail.NewService(ctx, option.WithTokenSource(
        oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
    ))
    if err != nil {
        return "", err
    }

    res, err := svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
    if err != nil {
        return "", err
    }
    return res.Id, nil
}
