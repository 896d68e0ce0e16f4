package service_test

import (
	"strings"
	"testing"

	"github.com/clientdesk/clientdesk-backend/internal/service"
)

func TestApplyPlaceholders(t *testing.T) {
	got := service.ApplyPlaceholders(
		"Hi {{client_name}}, we will reach you at {{email}}.",
		service.PlaceholderVars{ClientName: "Alice", Email: "alice@example.com"},
	)
	want := "Hi Alice, we will reach you at alice@example.com."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyPlaceholdersDateDefaults(t *testing.T) {
	got := service.ApplyPlaceholders("As of {{date}}", service.PlaceholderVars{})
	if strings.Contains(got, "{{date}}") || got == "As of " {
		t.Errorf("date placeholder should default to now, got %q", got)
	}
}

func TestApplyPlaceholdersEmptyValues(t *testing.T) {
	got := service.ApplyPlaceholders("Hi {{client_name}}!", service.PlaceholderVars{})
	if got != "Hi !" {
		t.Errorf("empty vars should render empty, got %q", got)
	}
}
