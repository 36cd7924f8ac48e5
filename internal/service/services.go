// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/Infradevandops/NAMASKAH-sub003/internal/adapter"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/store"
)

type ClientServices struct {
	Updates       UpdateService
	Verifications VerificationService
	Account       AccountService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, tracker Tracker, log *logger.Logger) *ClientServices {
	updates := NewUpdateService(storages.Verifications, storages.Notifications, log)

	return &ClientServices{
		Updates:       updates,
		Verifications: NewVerificationService(serverAdapter, storages.Verifications, tracker, updates, log),
		Account:       NewAccountService(serverAdapter, log),
	}
}
