// Package server provides the HTTP REST API for the talent matcher.
package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// handleGetReport returns one stored match report.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := s.db.GetMatchReport(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if report == nil {
		notFound := &ErrReportNotFound{ReportID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleListJobReports returns a job's match reports, newest first. The
// optional ?limit= query caps the result count.
func (s *Server) handleListJobReports(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	reports, err := s.db.ListMatchReportsByJob(r.Context(), jobID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"reports": reports})
}
