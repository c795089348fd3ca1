package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/simterview/simterview/internal/logger"
	"github.com/simterview/simterview/internal/service"
	"github.com/simterview/simterview/internal/store"
	"github.com/simterview/simterview/internal/utils"
	"github.com/simterview/simterview/models"
)

func (h *Handler) saveLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	var request models.SaveLogRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	transcript, err := h.services.TranscriptService.SaveTranscript(ctx, userID, request.QuestionsLog)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during transcript save")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.SaveLogResponse{Success: true, InterviewID: transcript.TranscriptID}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) getResult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	transcriptID, err := strconv.ParseInt(r.URL.Query().Get("interview_id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid interview_id query parameter")
		http.Error(w, "invalid interview_id query parameter", http.StatusBadRequest)
		return
	}

	transcript, err := h.services.TranscriptService.GetTranscript(ctx, userID, transcriptID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTranscriptNotFound):
			log.Err(err).Msg("transcript was not found")
			http.Error(w, "transcript was not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred while reading transcript")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, transcript, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
