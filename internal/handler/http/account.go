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

func (h *Handler) walletBalance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.walletBalance").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	balance, err := h.backend.WalletBalance(userID)
	if err != nil {
		switch {
		case errors.Is(err, devserver.ErrUnknownUser):
			log.Warn().Str("user_id", userID).Msg("wallet requested by unknown user")
			http.Error(w, app.MsgUnknownUser, http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during balance lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, balance, http.StatusOK)
}

func (h *Handler) listRentals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.listRentals").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	rentals, err := h.backend.Rentals(userID)
	if err != nil {
		switch {
		case errors.Is(err, devserver.ErrUnknownUser):
			log.Warn().Str("user_id", userID).Msg("rentals requested by unknown user")
			http.Error(w, app.MsgUnknownUser, http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during rental listing")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.RentalsResponse{Rentals: rentals, Length: len(rentals)}, http.StatusOK)
}

func (h *Handler) extendRental(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	rentalID := chi.URLParam(r, "rentalID")

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.extendRental").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.ExtendRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Hours <= 0 {
		log.Warn().Int("hours", req.Hours).Msg("invalid extension hours")
		http.Error(w, app.MsgInvalidExtensionHours, http.StatusBadRequest)
		return
	}

	extended, err := h.backend.ExtendRental(userID, rentalID, req.Hours)
	if err != nil {
		switch {
		case errors.Is(err, devserver.ErrUnknownUser):
			log.Warn().Str("user_id", userID).Msg("extension requested by unknown user")
			http.Error(w, app.MsgUnknownUser, http.StatusForbidden)
			return
		case errors.Is(err, devserver.ErrRentalNotFound):
			log.Warn().Str("id", rentalID).Msg("rental not found")
			http.Error(w, app.MsgRentalNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during rental extension")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, extended, http.StatusOK)
}
