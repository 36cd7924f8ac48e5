package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/app"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/devserver"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/utils"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if user.Email == "" || user.Password == "" {
		log.Warn().Msg("empty email or password")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	userID, err := h.backend.Authenticate(user.Email, user.Password)
	if err != nil {
		switch {
		case errors.Is(err, devserver.ErrBadCredentials):
			log.Err(err).Str("email", user.Email).Msg("wrong credentials")
			http.Error(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, userID, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("user_id", userID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
