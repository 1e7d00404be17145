package api

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/theUtkarshRaj/SupplyGuard/internal/infrastructure/storage"
)

// Server exposes the three derived collections read-only. Files are read per
// request so a snapshot renamed into place by a concurrent pipeline run is
// picked up immediately.
type Server struct {
	dataDir string
	logger  *slog.Logger
}

// NewServer serves snapshots from dataDir.
func NewServer(dataDir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{dataDir: dataDir, logger: logger}
}

// Router builds the chi route table.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/suppliers", s.serveSnapshot(storage.SuppliersFile))
	r.Get("/api/alerts", s.serveSnapshot(storage.AlertsFile))
	r.Get("/api/news", s.serveSnapshot(storage.NewsFile))
	return r
}

func (s *Server) serveSnapshot(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := os.ReadFile(filepath.Join(s.dataDir, name))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				s.writeError(w, http.StatusServiceUnavailable, "snapshot not available yet")
				return
			}
			s.logger.Error("read snapshot", "file", name, "error", err)
			s.writeError(w, http.StatusInternalServerError, "cannot read snapshot")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
