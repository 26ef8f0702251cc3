package httpapi

import (
	"context"
	"net/http"
	"time"

	"qanda-service/internal/logging"
	"qanda-service/internal/server/auth"
	"qanda-service/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the service over HTTP. Routes that mutate state require
// a valid session token in the Authorization header.
type Server struct {
	logger    logging.Logger
	guard     *auth.Guard
	accounts  *services.AccountService
	questions *services.QuestionService
	answers   *services.AnswerService

	httpServer *http.Server
}

func NewServer(
	addr string,
	logger logging.Logger,
	guard *auth.Guard,
	accounts *services.AccountService,
	questions *services.QuestionService,
	answers *services.AnswerService,
) *Server {
	s := &Server{
		logger:    logger,
		guard:     guard,
		accounts:  accounts,
		questions: questions,
		answers:   answers,
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           withRequestLog(logger, s.routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /registration", s.handleRegistration)
	mux.HandleFunc("POST /login", s.handleLogin)

	mux.HandleFunc("GET /questions", s.handleListQuestions)
	mux.HandleFunc("POST /questions", withSession(s.guard, s.handleAddQuestion))
	mux.HandleFunc("PUT /questions/{id}", withSession(s.guard, s.handleUpdateQuestion))
	mux.HandleFunc("DELETE /questions/{id}", withSession(s.guard, s.handleDeleteQuestion))

	mux.HandleFunc("GET /questions/{id}/answers", s.handleListAnswers)
	mux.HandleFunc("POST /answers", withSession(s.guard, s.handleAddAnswer))

	return mux
}

// Run serves until the context is canceled, then drains in-flight
// requests within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info(shutdownCtx, "http server shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}
