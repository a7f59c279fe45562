package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/extract"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/store"
	"go.uber.org/zap"
)

const defaultListLimit = 20

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, errTooLarge)
			return
		}
		s.writeError(w, r, errMissingInput)
		return
	}
	defer r.MultipartForm.RemoveAll()

	jobDescription := r.FormValue("jobDescription")
	file, header, err := r.FormFile("resume")
	if err != nil || jobDescription == "" {
		s.writeError(w, r, errMissingInput)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("reading upload: %w", err))
		return
	}

	resumeText, err := extract.FromFile(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if !errors.Is(err, extract.ErrUnsupportedFileType) && !errors.Is(err, extract.ErrPDFNotSupported) {
			err = fmt.Errorf("%w: %v", errUnreadable, err)
		}
		s.writeError(w, r, err)
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), analysis.Request{
		FileName:       header.Filename,
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if s.store != nil {
		rec := &store.Record{FileName: header.Filename, JobDescription: jobDescription, Report: *report}
		if err := s.store.Save(r.Context(), rec); err != nil {
			s.logger.Error("saving analysis", zap.String("file", header.Filename), zap.Error(err))
		} else {
			w.Header().Set("Location", "/api/analyses/"+rec.ID)
			s.logger.Debug("analysis saved", append(
				[]zap.Field{zap.String("id", rec.ID)},
				logger.ScoreFields(report.ATAScore, report.KeywordScore, report.SemanticScore, report.FormattingScore)...,
			)...)
		}
	}

	s.jsonResponse(w, http.StatusOK, report)
}

type embeddingRequest struct {
	Text string `json:"text"`
}

type embeddingResponse struct {
	Embedding []float64 `json:"embedding"`
}

func (s *Server) handleEmbeddings(w http.ResponseWriter, r *http.Request) {
	var req embeddingRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxUpload)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		s.writeError(w, r, errMissingText)
		return
	}

	if s.analyzer == nil || s.analyzer.Embedder == nil {
		s.writeError(w, r, errors.New("embedder is not configured"))
		return
	}

	embedding, err := s.analyzer.Embedder.Embed(r.Context(), req.Text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, embeddingResponse{Embedding: embedding})
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, errNoHistory)
		return
	}

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, r, errBadLimit)
			return
		}
		limit = n
	}

	records, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": records})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, errNoHistory)
		return
	}

	rec, err := s.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, errNoHistory)
		return
	}

	if err := s.store.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
