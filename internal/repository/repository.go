package repository

import (
	"context"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

type Filter struct {
	Limit int
	Level *models.AlertLevel
}

type AlertRepository interface {
	Add(ctx context.Context, a *models.Alert) error
	Exists(ctx context.Context, id string) (bool, error)
	ListAlerts(ctx context.Context, opts Filter) ([]models.Alert, error)
}
