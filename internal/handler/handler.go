package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/jmcrae/studytrack/internal/model"
	"github.com/jmcrae/studytrack/internal/report"
	"github.com/jmcrae/studytrack/internal/store"
)

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store   *store.Store
	reports *report.Builder
}

// New creates a new Handler.
func New(s *store.Store, b *report.Builder) *Handler {
	return &Handler{store: s, reports: b}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/questions_by_topic/{topic}", h.handleQuestionsByTopic)
	r.Post("/attempt", h.handleCreateAttempt)
	r.Get("/topics", h.handleTopics)
	r.Get("/attempts", h.handleListAttempts)
	r.Post("/generate-report", h.handleGenerateReport)
	r.Get("/healthz", h.handleHealth)
}

func (h *Handler) handleQuestionsByTopic(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	// Topic names contain spaces and arrive percent-encoded.
	if u, err := url.PathUnescape(topic); err == nil {
		topic = u
	}
	questions, err := h.store.ListQuestionsByTopic(topic)
	if err != nil {
		h.internalErr(w, r, err)
		return
	}
	if len(questions) == 0 {
		respondErr(w, http.StatusNotFound, "No questions found for this topic")
		return
	}
	respond(w, http.StatusOK, questions)
}

func (h *Handler) handleCreateAttempt(w http.ResponseWriter, r *http.Request) {
	var in model.AttemptInput
	if !decode(w, r, &in) {
		return
	}
	if in.QuestionID == nil {
		respondErr(w, http.StatusBadRequest, "question_id is required")
		return
	}

	question, err := h.store.GetQuestion(*in.QuestionID)
	if err != nil {
		h.internalErr(w, r, err)
		return
	}
	if question == nil {
		respondErr(w, http.StatusNotFound, "Question not found")
		return
	}

	attempt := model.Attempt{QuestionID: *in.QuestionID, Explanation: in.Explanation}
	// An empty error_type means the student has not classified the attempt.
	if in.ErrorType != nil && *in.ErrorType != "" {
		et := model.ErrorType(*in.ErrorType)
		if !et.Valid() {
			respondErr(w, http.StatusBadRequest, "Invalid error_type")
			return
		}
		attempt.ErrorType = &et
	}

	id, err := h.store.InsertAttempt(attempt)
	if err != nil {
		h.internalErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{"message": "Attempt created successfully", "id": id})
}

func (h *Handler) handleTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.store.ListDistinctTopics()
	if err != nil {
		h.internalErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, topics)
}

func (h *Handler) handleListAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.store.ListAttemptViews()
	if err != nil {
		h.internalErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, attempts)
}

func (h *Handler) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req model.ReportRequest
	if !decode(w, r, &req) {
		return
	}
	rep := h.reports.Generate(r.Context(), req.Attempts)
	respond(w, http.StatusOK, model.ReportResponse{Report: rep})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) internalErr(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal error", "error", err, "path", r.URL.Path)
	respondErr(w, http.StatusInternalServerError, "internal server error")
}
