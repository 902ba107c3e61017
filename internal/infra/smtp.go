package infra

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"tramitesbackend/internal/config"
	"tramitesbackend/internal/model"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending emails with PDF attachments.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// EnviarCotizacion mails the quote PDF to the given address.
func (m *Mailer) EnviarCotizacion(_ context.Context, destino string, cot *model.Cotizador, pdf []byte) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{destino}
	e.Subject = fmt.Sprintf("Cotización %s", cot.Placa)
	e.Text = []byte(fmt.Sprintf(
		"Hola %s,\n\nAdjuntamos la cotización del trámite para el vehículo con placa %s.\n\nSaludos.",
		cot.NombreCompleto, cot.Placa,
	))

	nombre := fmt.Sprintf("cotizacion_%s.pdf", cot.ID)
	if _, err := e.Attach(bytes.NewReader(pdf), nombre, "application/pdf"); err != nil {
		return fmt.Errorf("mailer: attach PDF: %w", err)
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
