// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/clientdesk/clientdesk-backend/internal/controller"
	"github.com/clientdesk/clientdesk-backend/internal/db"
	"github.com/clientdesk/clientdesk-backend/internal/google"
	"github.com/clientdesk/clientdesk-backend/internal/handler"
	"github.com/clientdesk/clientdesk-backend/internal/repository"
	"github.com/clientdesk/clientdesk-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()

	oauthCfg, err := google.OAuthConfig()
	if err != nil {
		log.Fatal(err)
	}

	tokenRepo := &repository.TokenRepository{DB: db.DB}
	logRepo := &repository.EmailLogRepository{DB: db.DB}
	clientRepo := &repository.ClientRepository{DB: db.DB}
	templateRepo := &repository.TemplateRepository{DB: db.DB}

	tokenService := &service.TokenService{
		Tokens:    tokenRepo,
		Refresher: &google.Refresher{Config: oauthCfg},
	}

	gmailService := &service.GmailService{
		Tokens: tokenService,
		Logs:   logRepo,
		Sender: google.GmailAPI{},
		// Gmail tolerates far more, but pacing sends keeps a big batch
		// from tripping per-user quota.
		Limiter: rate.NewLimiter(rate.Limit(2), 5),
	}

	calendarService := &service.CalendarService{
		Tokens: tokenService,
		Events: google.CalendarAPI{},
	}

	emailController := &controller.EmailController{Gmail: gmailService}
	calendarController := &controller.CalendarController{Calendar: calendarService}

	clientHandler := &handler.ClientHandler{Repo: clientRepo}
	templateHandler := &handler.TemplateHandler{Repo: templateRepo}
	logHandler := &handler.EmailLogHandler{Repo: logRepo}
	authHandler := &handler.AuthHandler{OAuth: oauthCfg, Tokens: tokenRepo}

	r := chi.NewRouter()

	// Google consent flow
	r.Get("/auth/google", authHandler.GoogleLogin)
	r.Get("/auth/google/callback", authHandler.GoogleCallback)

	// Email routes
	r.Post("/api/emails/send", emailController.SendEmails)
	r.Get("/api/emails/logs", logHandler.ListLogs)
	r.Get("/api/emails/logs/count", logHandler.CountLogs)

	// Calendar routes
	r.Get("/api/calendar/events", calendarController.ListEvents)

	// Client routes
	r.Get("/api/clients", clientHandler.ListClients)
	r.Post("/api/clients", clientHandler.CreateClient)
	r.Put("/api/clients/{id}", clientHandler.UpdateClient)
	r.Delete("/api/clients/{id}", clientHandler.DeleteClient)

	// Template routes
	r.Get("/api/templates", templateHandler.ListTemplates)
	r.Post("/api/templates", templateHandler.CreateTemplate)
	r.Put("/api/templates/{id}", templateHandler.UpdateTemplate)
	r.Delete("/api/templates/{id}", templateHandler.DeleteTemplate)

	log.Println("🚀 Server running on :8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
