package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/app"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/devserver"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/utils"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

func (h *Handler) createVerification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.ServiceName == "" {
		log.Warn().Msg("create verification without service name")
		http.Error(w, app.MsgNoServiceNameProvided, http.StatusBadRequest)
		return
	}

	created := h.backend.CreateVerification(req)

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getVerification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	verificationID := chi.URLParam(r, "verificationID")

	found, err := h.backend.GetVerification(verificationID)
	if err != nil {
		switch {
		case errors.Is(err, devserver.ErrVerificationNotFound):
			log.Warn().Str("id", verificationID).Msg("verification not found")
			http.Error(w, app.MsgVerificationNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during verification lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) getVerificationMessages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	verificationID := chi.URLParam(r, "verificationID")

	messages, err := h.backend.Messages(verificationID)
	if err != nil {
		switch {
		case errors.Is(err, devserver.ErrVerificationNotFound):
			log.Warn().Str("id", verificationID).Msg("verification not found")
			http.Error(w, app.MsgVerificationNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during message listing")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessagesResponse{Messages: messages, Length: len(messages)}, http.StatusOK)
}

func (h *Handler) cancelVerification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	verificationID := chi.URLParam(r, "verificationID")

	if err := h.backend.CancelVerification(verificationID); err != nil {
		switch {
		case errors.Is(err, devserver.ErrVerificationNotFound):
			log.Warn().Str("id", verificationID).Msg("verification not found")
			http.Error(w, app.MsgVerificationNotFound, http.StatusNotFound)
			return
		case errors.Is(err, devserver.ErrVerificationFinished):
			log.Warn().Str("id", verificationID).Msg("verification already finished")
			http.Error(w, app.MsgVerificationFinished, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during cancellation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
