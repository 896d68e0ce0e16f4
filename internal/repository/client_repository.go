package repository

import (
    "database/sql"
    "time"

    "github.com/google/uuid"

    appErrors "github.com/clientdesk/clientdesk-backend/internal/errors"
    "github.com/clientdesk/clientdesk-backend/internal/model"
)

// ClientRepositoryInterface defines methods used by service
type ClientRepositoryInterface interface {
    ListByUser(userID string) ([]model.Client, error)
    GetByID(userID, id string) (*model.Client, error)
    Create(c *model.Client) error
    Update(c *model.Client) error
    Delete(userID, id string) error
}

// ClientRepository is the concrete implementation
type ClientRepository struct {
    DB *sql.DB
}

// ListByUser fetches all clients for a user, newest first
func (r *ClientRepository) ListByUser(userID string) ([]model.Client, error) {
    query := `
        SELECT id, user_id, name, email, phone, notes, created_at, updated_at
        FROM clients
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
    rows, err := r.DB.Query(query, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    clients := []model.Client{}
    for rows.Next() {
        c, err := scanClient(rows)
        if err != nil {
            return nil, err
        }
        clients = append(clients, *c)
    }
    return clients, rows.Err()
}

func (r *ClientRepository) GetByID(userID, id string) (*model.Client, error) {
    query := `
        SELECT id, user_id, name, email, phone, notes, created_at, updated_at
        FROM clients
        WHERE id = $1 AND user_id = $2
    `
    c, err := scanClient(r.DB.QueryRow(query, id, userID))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewClientNotFound(id)
        }
        return nil, err
    }
    return c, nil
}

func (r *ClientRepository) Create(c *model.Client) error {
    c.ID = uuid.NewString()
    c.CreatedAt = time.Now()
    query := `
        INSERT INTO clients (id, user_id, name, email, phone, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
    _, err := r.DB.Exec(query, c.ID, c.UserID, c.Name, c.Email,
        nullString(c.Phone), nullString(c.Notes), c.CreatedAt)
    return err
}

func (r *ClientRepository) Update(c *model.Client) error {
    query := `
        UPDATE clients
        SET name=$1, email=$2, phone=$3, notes=$4, updated_at=NOW()
        WHERE id=$5 AND user_id=$6
    `
    res, err := r.DB.Exec(query, c.Name, c.Email,
        nullString(c.Phone), nullString(c.Notes), c.ID, c.UserID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return appErrors.NewClientNotFound(c.ID)
    }
    return nil
}

func (r *ClientRepository) Delete(userID, id string) error {
    res, err := r.DB.Exec(`DELETE FROM clients WHERE id=$1 AND user_id=$2`, id, userID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return appErrors.NewClientNotFound(id)
    }
    return nil
}

type rowScanner interface {
    Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*model.Client, error) {
    var c model.Client
    var phone, notes sql.NullString
    if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &phone, &notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
        return nil, err
    }
    c.Phone = phone.String
    c.Notes = notes.String
    return &c, nil
}

var _ ClientRepositoryInterface = (*ClientRepository)(nil)
