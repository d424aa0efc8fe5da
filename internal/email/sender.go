// Package email delivers generated audit reports to the client contact
// over plain SMTP.
package email

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
	"github.com/dcexperts/dcaudit/pkg/utils"
)

// Config holds SMTP delivery settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender sends audit reports by email. One attempt per call; retry
// policy belongs to the caller.
type Sender struct {
	cfg    Config
	logger *zap.Logger
}

// NewSender creates an email sender.
func NewSender(cfg Config, logger *zap.Logger) *Sender {
	return &Sender{cfg: cfg, logger: logger}
}

// SendReport mails the generated workbook to the client contact.
func (s *Sender) SendReport(client entity.ClientInfo, record entity.AuditRecord, reportPath string) error {
	if err := utils.ValidateEmail(client.Email); err != nil {
		return fmt.Errorf("client email rejected: %w", err)
	}

	s.logger.Info("sending audit report",
		zap.String("to", client.Email),
		zap.String("report", reportPath))

	subject := fmt.Sprintf("Rapport d'audit datacenter - %s", client.Company)
	body := s.buildBody(client, record)

	message, err := s.buildMessage(client.Email, subject, body, reportPath)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{client.Email}, message); err != nil {
		s.logger.Error("failed to send report email",
			zap.String("to", client.Email),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("audit report sent", zap.String("to", client.Email))
	return nil
}

func (s *Sender) buildBody(client entity.ClientInfo, record entity.AuditRecord) string {
	return fmt.Sprintf(`Bonjour %s,

Veuillez trouver ci-joint le rapport d'audit de votre datacenter.

Synthèse de l'évaluation :
- Classification TIA-942 : %s (score %.2f)
- Classification Uptime Institute : %s (score %.2f)
- Date de l'audit : %s

Cordialement,
L'équipe d'audit
`,
		client.Representative,
		record.TIA942Tier, record.TIA942,
		record.UptimeTier, record.Uptime,
		record.CreatedAt.Format("2006-01-02"))
}

// buildMessage assembles a multipart MIME message with the report file
// attached. Attachment content is base64 encoded in 76-column lines.
func (s *Sender) buildMessage(to, subject, body, attachmentPath string) ([]byte, error) {
	content, err := os.ReadFile(attachmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	boundary := fmt.Sprintf("dcaudit-%d", time.Now().UnixNano())
	fileName := filepath.Base(attachmentPath)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: application/vnd.openxmlformats-officedocument.spreadsheetml.sheet\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n\r\n", fileName)

	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String()), nil
}
