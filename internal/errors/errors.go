package appErrors

import "fmt"

// ErrCredentialNotFound is returned when a user has never connected Google.
type ErrCredentialNotFound struct {
    UserID string
}

func (e *ErrCredentialNotFound) Error() string {
    return fmt.Sprintf("no stored credential for user %s", e.UserID)
}

func NewCredentialNotFound(userID string) error {
    return &ErrCredentialNotFound{UserID: userID}
}

// ErrClientNotFound is a sentinel error
type ErrClientNotFound struct {
    ClientID string
}

func (e *ErrClientNotFound) Error() string {
    return fmt.Sprintf("client with ID %s not found", e.ClientID)
}

func NewClientNotFound(id string) error {
    return &ErrClientNotFound{ClientID: id}
}

type ErrTemplateNotFound struct {
    TemplateID string
}

func (e *ErrTemplateNotFound) Error() string {
    return fmt.Sprintf("template with ID %s not found", e.TemplateID)
}

func NewTemplateNotFound(id string) error {
    return &ErrTemplateNotFound{TemplateID: id}
}
