// internal/handler/auth_handler.go
package handler

import (
    "net/http"

    "golang.org/x/oauth2"

    "github.com/clientdesk/clientdesk-backend/internal/model"
    "github.com/clientdesk/clientdesk-backend/internal/repository"
)

// AuthHandler runs the Google consent flow and stores the resulting
// credential. The state parameter carries the user id across the redirect.
type AuthHandler struct {
    OAuth  *oauth2.Config
    Tokens repository.TokenRepositoryInterface
}

// GoogleLogin redirects the browser to Google's consent screen. Offline
// access plus a forced approval prompt guarantees a refresh token comes
// back even for repeat authorizations.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
    userID := r.URL.Query().Get("user_id")
    if userID == "" {
        http.Error(w, "user_id is required", http.StatusBadRequest)
        return
    }

    url := h.OAuth.AuthCodeURL(userID, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
    http.Redirect(w, r, url, http.StatusFound)
}

// GoogleCallback exchanges the authorization code and upserts the
// credential, creating it on the first successful handshake.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
    if errParam := r.URL.Query().Get("error"); errParam != "" {
        http.Error(w, "authorization denied: "+errParam, http.StatusBadRequest)
        return
    }

    userID := r.URL.Query().Get("state")
    code := r.URL.Query().Get("code")
    if userID == "" || code == "" {
        http.Error(w, "missing state or code", http.StatusBadRequest)
        return
    }

    tok, err := h.OAuth.Exchange(r.Context(), code)
    if err != nil {
        http.Error(w, "code exchange failed: "+err.Error(), http.StatusInternalServerError)
        return
    }

    cred := &model.Credential{
        UserID:       userID,
        AccessToken:  tok.AccessToken,
        RefreshToken: tok.RefreshToken,
    }
    if !tok.Expiry.IsZero() {
        expiry := tok.Expiry
        cred.ExpiresAt = &expiry
    }
    if err := h.Tokens.Upsert(userID, cred); err != nil {
        http.Error(w, "failed to store credential: "+err.Error(), http.StatusInternalServerError)
        return
    }

    writeJSON(w, map[string]interface{}{"data": map[string]string{"status": "connected"}})
}
