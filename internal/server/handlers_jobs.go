// Package server provides the HTTP REST API for the talent matcher.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/talent-matcher/internal/types"
)

// handleCreateJob stores a job built from inline fields or fetched from a
// posting URL.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var job *types.JobProfile
	if req.JobURL != "" {
		fetched, err := s.postings.FetchJob(r.Context(), req.JobURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch posting: %v", err))
			return
		}
		job = fetched
	} else {
		job = &types.JobProfile{
			Title:                   req.Title,
			Description:             req.Description,
			RequiredSkills:          req.RequiredSkills,
			SeniorityLevel:          req.SeniorityLevel,
			ExperienceYearsRequired: req.ExperienceYearsRequired,
		}
	}

	id, err := s.db.CreateJob(r.Context(), job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	job.ID = id

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleListJobs returns stored jobs, newest first.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.db.ListJobs(r.Context(), 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleGetJob returns one stored job.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if job == nil {
		notFound := &ErrJobNotFound{JobID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeleteJob removes a stored job and its reports.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := s.db.DeleteJob(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Job deleted"})
}
