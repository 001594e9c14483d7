package common

import (
	"gorm.io/gorm"

	"securityscan.com/securityscan/core"
	"securityscan.com/securityscan/infrastructure/communication"
	"securityscan.com/securityscan/infrastructure/devops"
	"securityscan.com/securityscan/infrastructure/filesystem"
)

// Handler carries the shared dependencies every endpoint group needs.
type Handler struct {
	Dm      *core.DatabaseManager
	Storage filesystem.Storage
	Mailer  *communication.Mailer
	Slack   *communication.Slack
	Config  *devops.Configuration
}

func (h *Handler) DB() *gorm.DB {
	return h.Dm.DB
}
