// Package handler implements the HTTP surface of the activities API.
// Handlers translate service outcomes into status codes and JSON bodies;
// no domain logic lives here.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activities-api/internal/domain"
	"github.com/mergington/activities-api/internal/metrics"
	"github.com/mergington/activities-api/web"
)

// ActivityServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ActivityServicer interface {
	GetActivities(ctx context.Context) (map[string]domain.ActivityDetail, error)
	Signup(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

// Server holds the dependencies shared by all handlers.
// Methods are split into domain-specific files (activity.go, health.go,
// docs.go) but all operate on this struct.
type Server struct {
	activities ActivityServicer
	metrics    metrics.Recorder // nil disables domain metric recording
}

// NewServer constructs the Server with all its dependencies.
// Pass nil for rec when metrics are not wired (e.g. most tests).
func NewServer(activities ActivityServicer, rec metrics.Recorder) *Server {
	return &Server{activities: activities, metrics: rec}
}

// Routes returns the chi router for the whole API surface.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.RedirectRoot)
	r.Get("/healthz", s.GetHealth)
	r.Get("/activities", s.ListActivities)
	r.Post("/activities/{activityName}/signup", s.Signup)
	r.Delete("/activities/{activityName}/unregister", s.Unregister)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)
	r.Get("/docs", s.GetDocs)
	r.Handle("/static/*", http.FileServer(http.FS(web.FS)))

	return r
}

// RedirectRoot handles GET /.
// It sends browsers to the static front-end entry page.
func (s *Server) RedirectRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusFound)
}

func (s *Server) recordSignup(result string) {
	if s.metrics != nil {
		s.metrics.RecordSignup(result)
	}
}

func (s *Server) recordUnregister(result string) {
	if s.metrics != nil {
		s.metrics.RecordUnregister(result)
	}
}
