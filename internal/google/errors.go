package google

import (
    "errors"
    "net/http"

    "google.golang.org/api/googleapi"
)

// IsUnauthorized reports whether err is the provider rejecting the access
// token (HTTP 401). This is the only error class worth a refresh-and-retry.
func IsUnauthorized(err error) bool {
    var gerr *googleapi.Error
    if errors.As(err, &gerr) {
        return gerr.Code == http.StatusUnauthorized
    }
    return false
}
