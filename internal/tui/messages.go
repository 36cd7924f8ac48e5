package tui

import (
	"github.com/Infradevandops/NAMASKAH-sub003/internal/service"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

type loginResultMsg struct {
	token models.Token
	err   error
}

type displayEventMsg struct {
	event service.Event
	ok    bool
}

type statusTickMsg struct{}

type verificationsLoadedMsg struct {
	items []models.Verification
	err   error
}

type createDoneMsg struct {
	created models.Verification
	err     error
}

type cancelDoneMsg struct {
	id  string
	err error
}

type messagesLoadedMsg struct {
	id    string
	items []models.SMSMessage
	err   error
}

type refreshDoneMsg struct {
	err error
}

type accountLoadedMsg struct {
	balance models.WalletBalance
	rentals []models.Rental
	err     error
}

type extendDoneMsg struct {
	extended models.Rental
	err      error
}
