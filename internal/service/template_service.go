// internal/service/template_service.go
package service

import (
    "strings"
    "time"
)

// PlaceholderVars are the values substituted into template text.
type PlaceholderVars struct {
    ClientName string
    Email      string
    Date       string
}

// ApplyPlaceholders fills the {{client_name}}, {{email}} and {{date}}
// tokens. An empty Date defaults to the current time; other empty values
// render as empty strings.
func ApplyPlaceholders(text string, vars PlaceholderVars) string {
    date := vars.Date
    if date == "" {
        date = time.Now().Format(time.RFC3339)
    }
    r := strings.NewReplacer(
        "{{client_name}}", vars.ClientName,
        "{{email}}", vars.Email,
        "{{date}}", date,
    )
    return r.Replace(text)
}
