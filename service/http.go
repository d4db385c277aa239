package service

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// NewHTTPGateway builds the JSON/HTTP surface for the four control-plane
// actions of spec §6, routed through the same Service the gRPC server
// uses: `POST /v1/graphs` (create), `GET /v1/graphs` (list),
// `POST /v1/graphs/relabel`, `POST /v1/graphs/compute`.
func NewHTTPGateway(s *Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Route("/v1/graphs", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleList)
		r.Post("/relabel", s.handleRelabel)
		r.Post("/compute", s.handleCompute)
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).
			Int("status", ww.Status()).Msg("csrgraph: http request")
	})
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "http.Create")
	defer span.End()

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, err)
		return
	}
	res, err := s.Create(req)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Service) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.List())
}

func (s *Service) handleRelabel(w http.ResponseWriter, r *http.Request) {
	var req RelabelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, err)
		return
	}
	res, err := s.Relabel(req)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Service) handleCompute(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "http.Compute")
	defer span.End()

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, err)
		return
	}
	res, err := s.Compute(req)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, err error) {
	writeJSON(w, toHTTPStatus(err), map[string]string{"error": err.Error()})
}
