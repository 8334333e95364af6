// Package httpapi exposes the task tracker over an HTTP/JSON API. It is the
// only layer that maps the internal error taxonomy to status codes; nothing
// below it knows about HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/akarpov87/taskkeep/internal/logging"
	"github.com/akarpov87/taskkeep/internal/server/config"
	"github.com/akarpov87/taskkeep/internal/server/models"
	"github.com/akarpov87/taskkeep/internal/server/repositories/tasks"
	"github.com/akarpov87/taskkeep/internal/server/services"
)

// shutdownTimeout bounds how long in-flight requests may finish on stop.
const shutdownTimeout = 5 * time.Second

// UserService is the slice of the user service the HTTP layer needs.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

// TaskService is the slice of the task service the HTTP layer needs.
type TaskService interface {
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Create(ctx context.Context, userID, title, description string) (*models.Task, error)
	Update(ctx context.Context, userID, taskID string, patch tasks.Patch) (*models.Task, error)
	Toggle(ctx context.Context, userID, taskID string) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

// Pinger reports record-store reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTPServer struct {
	address        string
	logger         logging.Logger
	users          UserService
	tasks          TaskService
	db             Pinger
	jwtSecret      []byte
	environment    string
	allowedOrigins string
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us UserService, ts TaskService, db Pinger) *HTTPServer {
	return &HTTPServer{
		address:        cfg.EndpointAddrHTTP,
		logger:         l.With("module", "http_server"),
		users:          us,
		tasks:          ts,
		db:             db,
		jwtSecret:      []byte(cfg.SecretKey),
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
	}
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address, "env", s.environment)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
