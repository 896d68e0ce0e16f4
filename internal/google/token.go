package google

import (
    "context"

    "golang.org/x/oauth2"
)

// Refresher exchanges a stored refresh token for a fresh access token via
// Google's token endpoint.
type Refresher struct {
    Config *oauth2.Config
}

func (r *Refresher) RefreshAccessToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
    src := r.Config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
    return src.Token()
}
