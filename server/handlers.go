package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/importer"
	"github.com/go-chi/chi/v5"
)

// maxUpload bounds the size of an imported file.
const maxUpload = 10 << 20

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "wealthguard",
	})
}

// handlePrices refreshes the quotes and stores them.
func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	prices, err := s.cfg.Refresher.GetPrices(r.Context(), s.cfg.Settings.Instruments)
	if err != nil {
		s.log.Error().Err(err).Msg("price refresh failed")
		s.writeError(w, http.StatusInternalServerError, "Failed to fetch prices")
		return
	}
	if err := s.cfg.Store.SetPrices(r.Context(), prices); err != nil {
		s.log.Error().Err(err).Msg("could not store prices")
	}
	s.writeJSON(w, http.StatusOK, prices)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d := wealthguard.NewDashboard(s.cfg.Settings, s.cfg.Store.Snapshot(), s.cfg.Now())
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, nonNil(s.cfg.Store.Transactions()))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, nonNil(s.cfg.Store.History()))
}

func (s *Server) handleIncomes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, nonNil(s.cfg.Store.Incomes()))
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, nonNil(s.cfg.Store.Expenses()))
}

// handlePropertyAnnual aggregates the property records of ?year=, the current year by default.
func (s *Server) handlePropertyAnnual(w http.ResponseWriter, r *http.Request) {
	year := s.cfg.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = y
	}
	snap := s.cfg.Store.Snapshot()
	s.writeJSON(w, http.StatusOK, wealthguard.CalculateAnnualPropertyData(snap.Incomes, snap.Expenses, year, s.cfg.Settings.Locale))
}

func (s *Server) handleAddProperty(w http.ResponseWriter, r *http.Request) {
	var p wealthguard.Property
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid property")
		return
	}
	if p.Name == "" {
		s.writeError(w, http.StatusBadRequest, "property name is required")
		return
	}
	p, err := s.cfg.Store.AddProperty(r.Context(), p)
	if err != nil {
		s.log.Error().Err(err).Msg("could not add property")
		s.writeError(w, http.StatusInternalServerError, "could not add property")
		return
	}
	s.writeJSON(w, http.StatusCreated, p)
}

// handleImport imports the multipart field "file" as /api/import/{kind}.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	kind, err := importer.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	n, err := s.cfg.Importer.ImportInto(r.Context(), s.cfg.Store, kind, header.Filename, file)
	switch {
	case errors.Is(err, importer.ErrNoProperty):
		s.writeError(w, http.StatusPreconditionFailed, importer.ErrNoProperty.Error())
	case errors.Is(err, importer.ErrNoValidRows):
		s.writeError(w, http.StatusUnprocessableEntity, importer.ErrNoValidRows.Error())
	case errors.Is(err, importer.ErrProcessing):
		s.writeError(w, http.StatusBadRequest, importer.ErrProcessing.Error())
	case err != nil:
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("import failed")
		s.writeError(w, http.StatusInternalServerError, "import failed")
	default:
		s.writeJSON(w, http.StatusOK, map[string]int{"accepted": n})
	}
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Store.LoadDemoData(r.Context()); err != nil {
		s.log.Error().Err(err).Msg("could not load demo data")
		s.writeError(w, http.StatusInternalServerError, "could not load demo data")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Store.ClearAll(r.Context()); err != nil {
		s.log.Error().Err(err).Msg("could not clear data")
		s.writeError(w, http.StatusInternalServerError, "could not clear data")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// nonNil encodes empty collections as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
