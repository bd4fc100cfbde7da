package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockMailer captures the outgoing message instead of sending it
type mockMailer struct {
	to         []string
	subject    string
	body       string
	filename   string
	attachment []byte
	calls      int
}

func (m *mockMailer) SendEmailWithAttachment(to []string, subject, body, filename string, attachment []byte) error {
	m.to = to
	m.subject = subject
	m.body = body
	m.filename = filename
	m.attachment = attachment
	m.calls++
	return nil
}

func TestPublishPlan_SendsWorkbookToRecipients(t *testing.T) {
	database := planForEditing(t)
	mailer := &mockMailer{}

	cfg := testConfig()
	cfg.PlanRecipients = []string{"frontdesk@example.com", "manager@example.com"}

	err := PublishPlan(context.Background(), database, mailer, cfg, zap.NewNop(), "2026-08-24")
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, cfg.PlanRecipients, mailer.to)
	assert.Contains(t, mailer.subject, "2026-08-24")
	assert.Equal(t, "cleaning_plan_2026-08-24.xlsx", mailer.filename)
	assert.NotEmpty(t, mailer.attachment)
}

func TestPublishPlan_NoRecipientsFails(t *testing.T) {
	database := planForEditing(t)
	mailer := &mockMailer{}

	err := PublishPlan(context.Background(), database, mailer, testConfig(), zap.NewNop(), "2026-08-24")
	require.Error(t, err)
	assert.Zero(t, mailer.calls)
}

func TestPublishPlan_MissingPlanFails(t *testing.T) {
	database := testDatabase()
	mailer := &mockMailer{}

	cfg := testConfig()
	cfg.PlanRecipients = []string{"frontdesk@example.com"}

	err := PublishPlan(context.Background(), database, mailer, cfg, zap.NewNop(), "2026-08-24")
	require.Error(t, err)
	assert.Zero(t, mailer.calls)
}
