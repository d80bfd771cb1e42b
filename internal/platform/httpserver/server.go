package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dailyclaim "todaybanner/contexts/banner/daily-claim"
	domainerrors "todaybanner/contexts/banner/daily-claim/domain/errors"
	bannerhttp "todaybanner/contexts/banner/daily-claim/transport/http"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "todaybanner/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	banner    dailyclaim.Module
	publicDir string
}

func New(banner dailyclaim.Module, logger *slog.Logger, addr string, publicDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		banner:    banner,
		publicDir: publicDir,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/state", s.handleGetState)
	s.mux.HandleFunc("POST /api/claim", s.handleClaim)

	// Static frontend fallback; the registered API patterns are more specific
	// and take precedence. http.FileServer rejects path traversal.
	if s.publicDir != "" {
		s.mux.Handle("GET /", http.FileServer(http.Dir(s.publicDir)))
	}
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	requestID := resolveRequestID(r)
	w.Header().Set("X-Request-Id", requestID)

	resp, err := s.banner.Handler.GetStateHandler(r.Context())
	if err != nil {
		s.logger.Error("get state request failed",
			"event", "http_get_state_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"request_id", requestID,
			"error", err.Error(),
		)
		writeBannerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	requestID := resolveRequestID(r)
	w.Header().Set("X-Request-Id", requestID)

	var req bannerhttp.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBannerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.banner.Handler.ClaimBannerHandler(r.Context(), req)
	if err != nil {
		// A lost race is a normal outcome; the handler populated the response
		// with the authoritative winner.
		if errors.Is(err, domainerrors.ErrAlreadyClaimed) {
			writeJSON(w, http.StatusConflict, resp)
			return
		}
		s.logger.Error("claim request failed",
			"event", "http_claim_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"request_id", requestID,
			"error", err.Error(),
		)
		writeBannerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeBannerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrEmptyText):
		writeBannerError(w, http.StatusBadRequest, "empty_text", "banner text must not be empty")
	case errors.Is(err, domainerrors.ErrTextTooLong):
		writeBannerError(w, http.StatusBadRequest, "text_too_long", "banner text exceeds the maximum length")
	case errors.Is(err, domainerrors.ErrRecordCorrupt):
		writeBannerError(w, http.StatusInternalServerError, "storage_error", "persisted banner record is corrupt")
	default:
		writeBannerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeBannerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, bannerhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func resolveRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-Id"); id != "" {
		return id
	}
	return uuid.NewString()
}
