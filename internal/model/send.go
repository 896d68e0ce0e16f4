// internal/model/send.go
package model

// SendItem is one (recipient, subject, body) unit of a bulk send request.
type SendItem struct {
    Email   string `json:"email"`
    Subject string `json:"subject"`
    Body    string `json:"body"`
}

// SendResult is the per-recipient outcome returned to the caller.
// Results come back in the same order as the requested items.
type SendResult struct {
    Email   string `json:"email"`
    Success bool   `json:"success"`
    Error   string `json:"error,omitempty"`
    ID      string `json:"id,omitempty"`
}
