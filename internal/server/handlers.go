package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/career"
	"github.com/spigell/careerfit/internal/filtering"
	"github.com/spigell/careerfit/internal/scoring"
	"github.com/spigell/careerfit/internal/skillgap"
)

type errorResponse struct {
	Error string `json:"error"`
}

type assessmentRequest struct {
	Answers scoring.Answers `json:"answers"`
	Skills  []string        `json:"skills,omitempty"`
}

type assessmentResponse struct {
	Profile  *career.Profile   `json:"profile"`
	Report   *scoring.Report   `json:"report"`
	SkillGap *skillGapResponse `json:"skillGap,omitempty"`
}

type skillGapRequest struct {
	Career string   `json:"career"`
	Skills []string `json:"skills"`
}

type skillGapResponse struct {
	*skillgap.Report
	Coverage int              `json:"coverage"`
	Plan     []skillgap.Phase `json:"plan"`
}

type questionView struct {
	ID      string              `json:"id"`
	Text    string              `json:"text"`
	Type    career.QuestionType `json:"type"`
	Weight  career.Weight       `json:"weight"`
	Options []string            `json:"options"`
}

type healthResponse struct {
	Status    string             `json:"status"`
	Version   string             `json:"version,omitempty"`
	Questions int                `json:"questions"`
	Careers   int                `json:"careers"`
	Filters   []filtering.Status `json:"filters"`
}

func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "answers are required")
		return
	}

	profile, report, err := s.engine.Compute(r.Context(), req.Answers)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidOptionIndex) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("computing career profile", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to compute career profile")
		return
	}

	s.metrics.assessments.WithLabelValues(profile.Title, strconv.FormatBool(report.Fallback)).Inc()

	resp := assessmentResponse{Profile: profile, Report: report}
	if req.Skills != nil {
		resp.SkillGap = newSkillGapResponse(skillgap.Analyze(req.Skills, profile))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	var req skillGapRequest
	if !s.decode(w, r, &req) {
		return
	}

	title := strings.TrimSpace(req.Career)
	if title == "" {
		writeError(w, http.StatusBadRequest, "career is required")
		return
	}

	profile, ok := s.engine.Catalog().Find(title)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown career %q", title))
		return
	}

	writeJSON(w, http.StatusOK, newSkillGapResponse(skillgap.Analyze(req.Skills, profile)))
}

func (s *Server) handleQuestions(w http.ResponseWriter, _ *http.Request) {
	questions := s.engine.Bank().Questions()
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		labels := make([]string, 0, len(q.Options))
		for _, opt := range q.Options {
			labels = append(labels, opt.Label)
		}
		views = append(views, questionView{ID: q.ID, Text: q.Text, Type: q.Type, Weight: q.Weight, Options: labels})
	}

	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCareers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Catalog().Candidates().Items)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Version:   s.opts.Version,
		Questions: s.engine.Bank().Len(),
		Careers:   s.engine.Catalog().Len(),
		Filters:   s.engine.Filters(),
	})
}

func newSkillGapResponse(report *skillgap.Report) *skillGapResponse {
	return &skillGapResponse{Report: report, Coverage: report.Coverage(), Plan: report.Plan()}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
