package email

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

func testSender() *Sender {
	return NewSender(Config{
		Host: "smtp.example.com",
		Port: 587,
		From: "audit@example.com",
	}, zap.NewNop())
}

func TestSendReportRejectsInvalidEmail(t *testing.T) {
	sender := testSender()

	err := sender.SendReport(
		entity.ClientInfo{Email: "not-an-address"},
		entity.AuditRecord{},
		"/tmp/report.xlsx",
	)
	assert.ErrorContains(t, err, "client email rejected")
}

func TestBuildBody(t *testing.T) {
	sender := testSender()

	body := sender.buildBody(
		entity.ClientInfo{Representative: "A. Diop"},
		entity.AuditRecord{
			TIA942Tier: "T3", TIA942: 99.985,
			UptimeTier: "TIER_II", Uptime: 78.5,
			CreatedAt: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
	)

	assert.Contains(t, body, "A. Diop")
	assert.Contains(t, body, "T3")
	assert.Contains(t, body, "TIER_II")
	assert.Contains(t, body, "2026-08-15")
}

func TestBuildMessage(t *testing.T) {
	sender := testSender()

	path := filepath.Join(t.TempDir(), "rapport.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("workbook bytes"), 0o644))

	msg, err := sender.buildMessage("client@example.com", "Rapport", "corps du message", path)
	require.NoError(t, err)

	raw := string(msg)
	assert.Contains(t, raw, "To: client@example.com")
	assert.Contains(t, raw, "multipart/mixed")
	assert.Contains(t, raw, `filename="rapport.xlsx"`)
	assert.Contains(t, raw, "Content-Transfer-Encoding: base64")
}

func TestBuildMessageMissingAttachment(t *testing.T) {
	sender := testSender()

	_, err := sender.buildMessage("client@example.com", "Rapport", "corps", "/nonexistent.xlsx")
	assert.ErrorContains(t, err, "failed to read attachment")
}
