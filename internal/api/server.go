package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/cadence/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mx                *chi.Mux
	submissionService service.SubmissionServiceI
}

type ServicesList struct {
	SubmissionService service.SubmissionServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		submissionService: servicesOptions.SubmissionService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(MonitorMiddleware)

	s.mx.Get("/healthz", s.Healthz)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/submissions", s.SubmitWork)
		r.Get("/streak", s.GetStreak)
	})
}

// Handler exposes the routed mux; tests mount it on httptest servers.
func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}
