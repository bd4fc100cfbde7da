package gmailclient

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMIMEMessage(t *testing.T) {
	attachment := []byte{0x50, 0x4b, 0x03, 0x04}
	message := buildMIMEMessage(
		[]string{"a@example.com", "b@example.com"},
		"Cleaning plan for 2026-08-24",
		"Attached is the plan.",
		"plan.xlsx",
		attachment,
	)

	assert.Contains(t, message, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, message, "Subject: Cleaning plan for 2026-08-24\r\n")
	assert.Contains(t, message, "Content-Type: multipart/mixed")
	assert.Contains(t, message, `filename="plan.xlsx"`)
	assert.Contains(t, message, base64.StdEncoding.EncodeToString(attachment))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(message), "--"), "the final boundary closes the message")
}
