// Package server provides the HTTP REST API for the talent matcher.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/talent-matcher/internal/counseling"
	"github.com/jonathan/talent-matcher/internal/types"
)

// handleRank scores candidates against a job and returns results best first.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.resolveJob(r, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	candidates, err := s.resolveCandidates(r, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	results, err := s.ranker.Rank(r.Context(), *job, candidates)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("ranking failed: %v", err))
		return
	}

	response := map[string]any{
		"job_id":  job.ID,
		"results": results,
	}

	// Persist the run as a match report when asked and the job is stored.
	if req.Save && job.ID != uuid.Nil {
		reportID, err := s.db.SaveMatchReport(r.Context(), job.ID, results)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("failed to save report: %v", err))
			return
		}
		response["report_id"] = reportID
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// resolveJob returns the request's inline job or loads the referenced one.
func (s *Server) resolveJob(r *http.Request, req *types.RankRequest) (*types.JobProfile, error) {
	if req.Job != nil {
		return req.Job, nil
	}
	job, err := s.db.GetJob(r.Context(), req.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &ErrJobNotFound{JobID: req.JobID}
	}
	return job, nil
}

// resolveCandidates merges inline candidates with stored ones referenced by
// ID, preserving request order.
func (s *Server) resolveCandidates(r *http.Request, req *types.RankRequest) ([]types.CandidateProfile, error) {
	candidates := make([]types.CandidateProfile, 0, len(req.Candidates)+len(req.CandidateIDs))
	candidates = append(candidates, req.Candidates...)

	for _, id := range req.CandidateIDs {
		candidate, err := s.db.GetCandidate(r.Context(), id)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			return nil, &ErrCandidateNotFound{CandidateID: id}
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, nil
}

// handleRecommendations returns the best-matching stored jobs for a
// candidate.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendJobsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate := req.Candidate
	if candidate == nil {
		stored, err := s.db.GetCandidate(r.Context(), req.CandidateID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		if stored == nil {
			err := &ErrCandidateNotFound{CandidateID: req.CandidateID}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		candidate = stored
	}

	jobs, err := s.db.ListJobs(r.Context(), 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	matches, err := s.ranker.RecommendJobs(r.Context(), *candidate, jobs, req.TopN)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("recommendation failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// handleGap runs a skill-gap analysis toward a target domain and level.
func (s *Server) handleGap(w http.ResponseWriter, r *http.Request) {
	var req types.GapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	skills, err := s.resolveSkills(r, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report := s.counselor.AnalyzeGap(skills, req.TargetDomain, req.TargetLevel)

	if months := s.gapTimeframe(req.TimeframeMonths); months != counseling.DefaultTimeframeMonths {
		report.LearningPath = s.counselor.GenerateLearningPath(report, months)
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleLearningPath regenerates only the phased learning path for a gap
// analysis, typically with a custom timeframe.
func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	var req types.GapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	skills, err := s.resolveSkills(r, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report := s.counselor.AnalyzeGap(skills, req.TargetDomain, req.TargetLevel)
	path := s.counselor.GenerateLearningPath(report, s.gapTimeframe(req.TimeframeMonths))

	s.jsonResponse(w, http.StatusOK, map[string]any{"learning_path": path})
}

// gapTimeframe picks the learning path horizon: request value, then server
// default, then the package default.
func (s *Server) gapTimeframe(requested int) int {
	if requested > 0 {
		return requested
	}
	if s.timeframeMonths > 0 {
		return s.timeframeMonths
	}
	return counseling.DefaultTimeframeMonths
}

// resolveSkills builds the candidate skill set from the request's skill
// list, resume text, or stored candidate, in that order of preference.
func (s *Server) resolveSkills(r *http.Request, req *types.GapRequest) (types.SkillSet, error) {
	if len(req.Skills) > 0 {
		return s.taxonomy.ExtractFromList(req.Skills), nil
	}
	if req.ResumeText != "" {
		return s.taxonomy.ExtractSkills(req.ResumeText), nil
	}

	candidate, err := s.db.GetCandidate(r.Context(), req.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, &ErrCandidateNotFound{CandidateID: req.CandidateID}
	}
	if candidate.Skills.Total() > 0 {
		return candidate.Skills, nil
	}
	return s.taxonomy.ExtractSkills(candidate.ResumeText), nil
}

// handleCareer produces a full career recommendation for a candidate.
func (s *Server) handleCareer(w http.ResponseWriter, r *http.Request) {
	var req types.CareerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate := req.Candidate
	if candidate == nil {
		stored, err := s.db.GetCandidate(r.Context(), req.CandidateID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		if stored == nil {
			err := &ErrCandidateNotFound{CandidateID: req.CandidateID}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		candidate = stored
	}

	recommendation := s.counselor.Recommend(r.Context(), *candidate)
	s.jsonResponse(w, http.StatusOK, recommendation)
}
