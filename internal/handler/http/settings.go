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

func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	var settings models.InterviewSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// ownership comes from the token, never from the body
	settings.UserID = userID

	if _, err := h.services.SettingsService.SaveSettings(ctx, settings); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during settings save")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, models.SaveSettingsResponse{Success: true}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) getLength(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	length, err := h.services.SettingsService.GetLength(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSettingsNotFound):
			log.Err(err).Msg("no settings saved for user")
			http.Error(w, "no settings saved", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred while reading settings")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, models.LengthResponse{Length: length}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
