package repository

import (
    "database/sql"
    "time"

    "github.com/google/uuid"

    appErrors "github.com/clientdesk/clientdesk-backend/internal/errors"
    "github.com/clientdesk/clientdesk-backend/internal/model"
)

type TemplateRepositoryInterface interface {
    ListByUser(userID string) ([]model.EmailTemplate, error)
    GetByID(userID, id string) (*model.EmailTemplate, error)
    Create(t *model.EmailTemplate) error
    Update(t *model.EmailTemplate) error
    Delete(userID, id string) error
}

type TemplateRepository struct {
    DB *sql.DB
}

func (r *TemplateRepository) ListByUser(userID string) ([]model.EmailTemplate, error) {
    query := `
        SELECT id, user_id, name, subject, body, created_at, updated_at
        FROM email_templates
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
    rows, err := r.DB.Query(query, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    templates := []model.EmailTemplate{}
    for rows.Next() {
        var t model.EmailTemplate
        if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Subject, &t.Body, &t.CreatedAt, &t.UpdatedAt); err != nil {
            return nil, err
        }
        templates = append(templates, t)
    }
    return templates, rows.Err()
}

func (r *TemplateRepository) GetByID(userID, id string) (*model.EmailTemplate, error) {
    query := `
        SELECT id, user_id, name, subject, body, created_at, updated_at
        FROM email_templates
        WHERE id = $1 AND user_id = $2
    `
    var t model.EmailTemplate
    err := r.DB.QueryRow(query, id, userID).Scan(&t.ID, &t.UserID, &t.Name, &t.Subject, &t.Body, &t.CreatedAt, &t.UpdatedAt)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewTemplateNotFound(id)
        }
        return nil, err
    }
    return &t, nil
}

func (r *TemplateRepository) Create(t *model.EmailTemplate) error {
    t.ID = uuid.NewString()
    t.CreatedAt = time.Now()
    query := `
        INSERT INTO email_templates (id, user_id, name, subject, body, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
    _, err := r.DB.Exec(query, t.ID, t.UserID, t.Name, t.Subject, t.Body, t.CreatedAt)
    return err
}

func (r *TemplateRepository) Update(t *model.EmailTemplate) error {
    query := `
        UPDATE email_templates
        SET name=$1, subject=$2, body=$3, updated_at=NOW()
        WHERE id=$4 AND user_id=$5
    `
    res, err := r.DB.Exec(query, t.Name, t.Subject, t.Body, t.ID, t.UserID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return appErrors.NewTemplateNotFound(t.ID)
    }
    return nil
}

func (r *TemplateRepository) Delete(userID, id string) error {
    res, err := r.DB.Exec(`DELETE FROM email_templates WHERE id=$1 AND user_id=$2`, id, userID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return appErrors.NewTemplateNotFound(id)
    }
    return nil
}

var _ TemplateRepositoryInterface = (*TemplateRepository)(nil)
