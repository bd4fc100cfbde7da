package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hoteldesk/roomrota/internal/config"
	"github.com/hoteldesk/roomrota/pkg/db"
	"github.com/hoteldesk/roomrota/pkg/excel"
)

// PlanMailer sends a rendered plan workbook to the configured recipients
type PlanMailer interface {
	SendEmailWithAttachment(to []string, subject, body, filename string, attachment []byte) error
}

// PublishPlan renders the persisted plan for a date as an Excel workbook and
// emails it to the configured recipients
func PublishPlan(ctx context.Context, store db.PlanStore, mailer PlanMailer, cfg *config.Config, logger *zap.Logger, date string) error {
	if len(cfg.PlanRecipients) == 0 {
		return fmt.Errorf("no plan recipients configured")
	}

	result, err := LoadPlan(ctx, store, cfg, logger, date)
	if err != nil {
		return err
	}

	attachment, err := excel.PlanBytes(result)
	if err != nil {
		return fmt.Errorf("failed to render plan workbook: %w", err)
	}

	subject := fmt.Sprintf("Cleaning plan for %s", date)
	body := fmt.Sprintf("Attached is the room cleaning plan for %s.", date)
	filename := fmt.Sprintf("cleaning_plan_%s.xlsx", date)

	logger.Debug("Sending plan",
		zap.String("date", date),
		zap.Int("recipients", len(cfg.PlanRecipients)),
		zap.Int("attachment_bytes", len(attachment)))

	if err := mailer.SendEmailWithAttachment(cfg.PlanRecipients, subject, body, filename, attachment); err != nil {
		return fmt.Errorf("failed to send plan: %w", err)
	}

	logger.Info("Plan published",
		zap.String("date", date),
		zap.Strings("recipients", cfg.PlanRecipients))

	return nil
}
