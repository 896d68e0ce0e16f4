package controller_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clientdesk/clientdesk-backend/internal/controller"
	"github.com/clientdesk/clientdesk-backend/internal/model"
	"github.com/clientdesk/clientdesk-backend/internal/service"
)

// --- Mocks ---

type MockTokenManager struct{}

func (m *MockTokenManager) GetValidAccessToken(ctx context.Context, userID string) (string, error) {
	return "tok", nil
}

func (m *MockTokenManager) Refresh(ctx context.Context, userID string) (string, error) {
	return "tok", nil
}

type MockSender struct {
	sent []string
}

func (m *MockSender) Send(ctx context.Context, accessToken, raw string) (string, error) {
	m.sent = append(m.sent, raw)
	return "msg-id", nil
}

type MockLogRepo struct {
	entries []model.EmailLog
}

func (m *MockLogRepo) Create(entry *model.EmailLog) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockLogRepo) ListByUser(userID string, limit int) ([]model.EmailLog, error) {
	return m.entries, nil
}

func (m *MockLogRepo) CountByUser(userID string) (int, error) {
	return len(m.entries), nil
}

func newEmailController(sender *MockSender, logs *MockLogRepo) *controller.EmailController {
	svc := &service.GmailService{
		Tokens: &MockTokenManager{},
		Logs:   logs,
		Sender: sender,
	}
	return &controller.EmailController{Gmail: svc}
}

// --- Tests ---

func TestSendEmailsWithItems(t *testing.T) {
	sender := &MockSender{}
	logs := &MockLogRepo{}
	ctrl := newEmailController(sender, logs)

	body := map[string]interface{}{
		"items": []map[string]string{
			{"email": "a@example.com", "subject": "Hi A", "body": "Body A"},
			{"email": "b@example.com", "subject": "Hi B", "body": "Body B"},
		},
	}
	b, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/emails/send", bytes.NewReader(b))
	req.Header.Set("X-User-ID", "u1")
	req.Header.Set("X-User-Email", "me@biz.com")
	w := httptest.NewRecorder()

	ctrl.SendEmails(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res struct {
		Data struct {
			Sent    int                `json:"sent"`
			Total   int                `json:"total"`
			Results []model.SendResult `json:"results"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Data.Sent != 2 || res.Data.Total != 2 {
		t.Errorf("expected sent=2 total=2, got %+v", res.Data)
	}
	if len(sender.sent) != 2 {
		t.Errorf("expected 2 provider calls, got %d", len(sender.sent))
	}
	if len(logs.entries) != 2 {
		t.Errorf("expected 2 log entries, got %d", len(logs.entries))
	}
}

func TestSendEmailsEmptyItemsArray(t *testing.T) {
	// An explicit empty items array is the items shape, not a missing
	// recipients list: it returns an empty summary without touching the
	// provider or the log.
	sender := &MockSender{}
	logs := &MockLogRepo{}
	ctrl := newEmailController(sender, logs)

	req := httptest.NewRequest("POST", "/api/emails/send", bytes.NewReader([]byte(`{"items": []}`)))
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()

	ctrl.SendEmails(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res struct {
		Data struct {
			Sent    int                `json:"sent"`
			Total   int                `json:"total"`
			Results []model.SendResult `json:"results"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Data.Sent != 0 || res.Data.Total != 0 || len(res.Data.Results) != 0 {
		t.Errorf("expected empty summary, got %+v", res.Data)
	}
	if len(sender.sent) != 0 {
		t.Errorf("expected zero provider calls, got %d", len(sender.sent))
	}
	if len(logs.entries) != 0 {
		t.Errorf("expected zero log entries, got %d", len(logs.entries))
	}
}

func TestSendEmailsExpandsPlaceholders(t *testing.T) {
	sender := &MockSender{}
	ctrl := newEmailController(sender, &MockLogRepo{})

	body := map[string]interface{}{
		"recipients": []map[string]string{
			{"email": "alice@example.com", "name": "Alice"},
			{"email": "bob@example.com", "name": "Bob"},
		},
		"subject": "Hello {{client_name}}",
		"body":    "Hi {{client_name}}, we have your address as {{email}}.",
	}
	b, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/emails/send", bytes.NewReader(b))
	req.Header.Set("X-User-ID", "u1")
	req.Header.Set("X-User-Email", "me@biz.com")
	w := httptest.NewRecorder()

	ctrl.SendEmails(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Result().StatusCode)
	}
	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 provider calls, got %d", len(sender.sent))
	}

	decoded, err := base64.RawURLEncoding.DecodeString(sender.sent[1])
	if err != nil {
		t.Fatalf("raw payload is not unpadded base64url: %v", err)
	}
	msg := string(decoded)
	for _, want := range []string{
		"To: bob@example.com\r\n",
		"Subject: Hello Bob\r\n",
		"Hi Bob, we have your address as bob@example.com.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "{{") {
		t.Errorf("unexpanded placeholder left in message:\n%s", msg)
	}
}

func TestSendEmailsWithRecipientsShape(t *testing.T) {
	sender := &MockSender{}
	ctrl := newEmailController(sender, &MockLogRepo{})

	body := map[string]interface{}{
		"recipients": []map[string]string{
			{"email": "a@example.com", "name": "Alice"},
		},
		"subject": "Hello",
		"body":    "Same body for everyone",
	}
	b, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/emails/send", bytes.NewReader(b))
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()

	ctrl.SendEmails(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Result().StatusCode)
	}
	if len(sender.sent) != 1 {
		t.Errorf("expected 1 provider call, got %d", len(sender.sent))
	}
}

func TestSendEmailsRequiresUser(t *testing.T) {
	ctrl := newEmailController(&MockSender{}, &MockLogRepo{})

	req := httptest.NewRequest("POST", "/api/emails/send", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()

	ctrl.SendEmails(w, req)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Result().StatusCode)
	}
}

func TestSendEmailsValidatesRecipients(t *testing.T) {
	ctrl := newEmailController(&MockSender{}, &MockLogRepo{})

	body := map[string]interface{}{"subject": "Hello", "body": "text"}
	b, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/emails/send", bytes.NewReader(b))
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()

	ctrl.SendEmails(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Result().StatusCode)
	}
}
