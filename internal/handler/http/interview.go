package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/simterview/simterview/internal/logger"
	"github.com/simterview/simterview/internal/service"
	"github.com/simterview/simterview/internal/store"
	"github.com/simterview/simterview/internal/utils"
	"github.com/simterview/simterview/models"
)

func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	var request models.NextQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	asked := make([]string, 0, len(request.QuestionsLog))
	for _, entry := range request.QuestionsLog {
		if entry.Question != "" {
			asked = append(asked, entry.Question)
		}
	}

	question, err := h.services.InterviewService.NextQuestion(ctx, userID, asked)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSettingsNotFound):
			log.Err(err).Msg("no settings saved for user")
			http.Error(w, "no settings saved", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during question generation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, models.QuestionResponse{Question: question}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) getAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	var request models.GradeAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.InterviewService.GradeAnswer(ctx, request.Question, request.Answer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during answer grading")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, result.Envelope(), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
