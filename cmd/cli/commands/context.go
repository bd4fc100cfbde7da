package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/hoteldesk/roomrota/internal/config"
	"github.com/hoteldesk/roomrota/pkg/db"
	"github.com/hoteldesk/roomrota/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	DB       *postgres.DB
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}
