// internal/handler/template_handler.go
package handler

import (
    "encoding/json"
    "net/http"

    "github.com/go-chi/chi/v5"

    "github.com/clientdesk/clientdesk-backend/internal/model"
    "github.com/clientdesk/clientdesk-backend/internal/repository"
)

type TemplateHandler struct {
    Repo repository.TemplateRepositoryInterface
}

func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
    userID := requireUser(w, r)
    if userID == "" {
        return
    }

    templates, err := h.Repo.ListByUser(userID)
    if err != nil {
        http.Error(w, "failed to fetch templates: "+err.Error(), http.StatusInternalServerError)
        return
    }
    writeJSON(w, map[string]interface{}{"data": templates})
}

func (h *TemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
    userID := requireUser(w, r)
    if userID == "" {
        return
    }

    var payload struct {
        Name    string `json:"name"`
        Subject string `json:"subject"`
        Body    string `json:"body"`
    }
    if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }
    if payload.Name == "" || payload.Subject == "" || payload.Body == "" {
        http.Error(w, "name, subject and body are required", http.StatusBadRequest)
        return
    }

    tmpl := &model.EmailTemplate{
        UserID:  userID,
        Name:    payload.Name,
        Subject: payload.Subject,
        Body:    payload.Body,
    }
    if err := h.Repo.Create(tmpl); err != nil {
        http.Error(w, "failed to create template: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(map[string]interface{}{"data": tmpl})
}

func (h *TemplateHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
    userID := requireUser(w, r)
    if userID == "" {
        return
    }
    id := chi.URLParam(r, "id")

    existing, err := h.Repo.GetByID(userID, id)
    if err != nil {
        writeRepoError(w, err)
        return
    }

    var payload struct {
        Name    *string `json:"name"`
        Subject *string `json:"subject"`
        Body    *string `json:"body"`
    }
    if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }

    if payload.Name != nil {
        existing.Name = *payload.Name
    }
    if payload.Subject != nil {
        existing.Subject = *payload.Subject
    }
    if payload.Body != nil {
        existing.Body = *payload.Body
    }

    if err := h.Repo.Update(existing); err != nil {
        writeRepoError(w, err)
        return
    }
    writeJSON(w, map[string]interface{}{"data": existing})
}

func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
    userID := requireUser(w, r)
    if userID == "" {
        return
    }
    id := chi.URLParam(r, "id")

    if err := h.Repo.Delete(userID, id); err != nil {
        writeRepoError(w, err)
        return
    }
    w.WriteHeader(http.StatusNoContent)
}
