// Package server provides the HTTP REST API for the talent matcher.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/types"
)

// handleCreateCandidate stores a candidate profile. Skills are extracted
// from the resume text when the request does not supply them.
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate := &types.CandidateProfile{
		Name:            req.Name,
		ResumeText:      req.ResumeText,
		Skills:          req.Skills,
		Education:       req.Education,
		ExperienceYears: req.ExperienceYears,
	}
	if candidate.Skills.Total() == 0 && candidate.ResumeText != "" {
		s.enrichFromResume(r.Context(), candidate)
	}

	id, err := s.db.CreateCandidate(r.Context(), candidate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	candidate.ID = id

	s.jsonResponse(w, http.StatusCreated, candidate)
}

// enrichFromResume fills missing profile fields from the resume text. LLM
// extraction is preferred when a client is configured; any failure falls
// back to taxonomy matching so creation never depends on the model.
func (s *Server) enrichFromResume(ctx context.Context, candidate *types.CandidateProfile) {
	if s.llmClient != nil {
		if parsed, err := llm.ParseResume(ctx, s.llmClient, candidate.ResumeText); err == nil {
			if candidate.Name == "" {
				candidate.Name = parsed.Name
			}
			if candidate.ExperienceYears == nil {
				candidate.ExperienceYears = parsed.ExperienceYears
			}
			if len(candidate.Education) == 0 {
				for _, degree := range parsed.Degrees {
					candidate.Education = append(candidate.Education, types.Education{Degree: degree})
				}
			}
			candidate.Skills = s.taxonomy.ExtractFromList(parsed.Skills)
		}
	}
	if candidate.Skills.Total() == 0 {
		candidate.Skills = s.taxonomy.ExtractSkills(candidate.ResumeText)
	}
}

// handleListCandidates returns stored candidates, newest first.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.db.ListCandidates(r.Context(), 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"candidates": candidates})
}

// handleGetCandidate returns one stored candidate.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if candidate == nil {
		notFound := &ErrCandidateNotFound{CandidateID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleDeleteCandidate removes a stored candidate.
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	if err := s.db.DeleteCandidate(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Candidate deleted"})
}
