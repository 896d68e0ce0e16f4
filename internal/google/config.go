// Package google wraps the Google OAuth and API plumbing shared by the
// Gmail send path and the Calendar list path.
package google

import (
    "fmt"
    "os"

    "golang.org/x/oauth2"
    googleoauth "golang.org/x/oauth2/google"
    "google.golang.org/api/calendar/v3"
    "google.golang.org/api/gmail/v1"
)

// OAuthConfig builds the oauth2 config from the environment. The redirect
// URI is only needed for the consent flow, not for refresh exchanges.
func OAuthConfig() (*oauth2.Config, error) {
    clientID := os.Getenv("GOOGLE_CLIENT_ID")
    clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
    if clientID == "" || clientSecret == "" {
        return nil, fmt.Errorf("missing GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET env vars")
    }

    return &oauth2.Config{
        ClientID:     clientID,
        ClientSecret: clientSecret,
        RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
        Scopes: []string{
            gmail.GmailSendScope,
            calendar.CalendarReadonlyScope,
        },
        Endpoint: googleoauth.Endpoint,
    }, nil
}
