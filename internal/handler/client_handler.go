// internal/handler/client_handler.go
package handler

import (
    "encoding/json"
    "errors"
    "net/http"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/clientdesk/clientdesk-backend/internal/errors"
    "github.com/clientdesk/clientdesk-backend/internal/model"
    "github.com/clientdesk/clientdesk-backend/internal/repository"
)

// ClientHandler holds the dependencies for client CRUD endpoints
type ClientHandler struct {
    Repo repository.ClientRepositoryInterface
}

func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
    userID := requireUser(w, r)
    if userID == "" {
        return
    }

    clients, err := h.Repo.ListByUser(userID)
    if err != nil {
        http.Error(w, "failed to fetch clients: "+err.Error(), http.StatusInternalServerError)
        return
    }

    writeJSON(w, map[string]interface{}{"data": clients})
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
    userID := requireUser(w, r)
    if userID == "" {
        return
    }

    var payload struct {
        Name  string `json:"name"`
        Email string `json:"email"`
        Phone string `json:"phone"`
        Notes string `json:"notes"`
    }
    if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }
    if payload.Name == "" || payload.Email == "" {
        http.Error(w, "name and email are required", http.StatusBadRequest)
        return
    }

    client := &model.Client{
        UserID: userID,
        Name:   payload.Name,
        Email:  payload.Email,
        Phone:  payload.Phone,
        Notes:  payload.Notes,
    }
    if err := h.Repo.Create(client); err != nil {
        http.Error(w, "failed to create client: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(map[string]interface{}{"data": client})
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
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
        Name  *string `json:"name"`
        Email *string `json:"email"`
        Phone *string `json:"phone"`
        Notes *string `json:"notes"`
    }
    if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }

    if payload.Name != nil {
        existing.Name = *payload.Name
    }
    if payload.Email != nil {
        existing.Email = *payload.Email
    }
    if payload.Phone != nil {
        existing.Phone = *payload.Phone
    }
    if payload.Notes != nil {
        existing.Notes = *payload.Notes
    }

    if err := h.Repo.Update(existing); err != nil {
        writeRepoError(w, err)
        return
    }

    writeJSON(w, map[string]interface{}{"data": existing})
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
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

// --- shared helpers ---

// requireUser resolves the authenticated user from the request or writes a
// 401 and returns "".
func requireUser(w http.ResponseWriter, r *http.Request) string {
    userID := r.Header.Get("X-User-ID")
    if userID == "" {
        http.Error(w, "Unauthorized", http.StatusUnauthorized)
    }
    return userID
}

func writeJSON(w http.ResponseWriter, v interface{}) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(v)
}

func writeRepoError(w http.ResponseWriter, err error) {
    var clientNotFound *appErrors.ErrClientNotFound
    var templateNotFound *appErrors.ErrTemplateNotFound
    if errors.As(err, &clientNotFound) || errors.As(err, &templateNotFound) {
        http.Error(w, err.Error(), http.StatusNotFound)
        return
    }
    http.Error(w, err.Error(), http.StatusInternalServerError)
}
