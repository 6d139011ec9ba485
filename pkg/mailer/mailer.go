package mailer

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"faculty-schedule/backend/config"
)

// Mailer sends account notification emails over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewMailer builds a Mailer from SMTP configuration.
func NewMailer(cfg *config.MailConfig, logger *zap.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// SendAccountCredentials mails freshly generated credentials to a new teacher.
func (m *Mailer) SendAccountCredentials(to, firstName, lastName, username, password string) error {
	body := fmt.Sprintf(
		"Bonjour %s %s,\n\n"+
			"Votre compte enseignant a été créé sur la plateforme de gestion des emplois du temps.\n\n"+
			"Nom d'utilisateur : %s\n"+
			"Mot de passe : %s\n\n"+
			"Veuillez changer votre mot de passe lors de votre première connexion.\n\n"+
			"Cordialement,\nL'administration",
		firstName, lastName, username, password,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Votre compte enseignant")
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.logger.Info("account credentials sent", zap.String("to", to))
	return nil
}

// SendCredentialsUpdate mails updated credentials after an admin reset.
func (m *Mailer) SendCredentialsUpdate(to, firstName, lastName, username, password string) error {
	body := fmt.Sprintf(
		"Bonjour %s %s,\n\n"+
			"Vos identifiants ont été mis à jour par l'administration.\n\n"+
			"Nom d'utilisateur : %s\n"+
			"Mot de passe : %s\n\n"+
			"Cordialement,\nL'administration",
		firstName, lastName, username, password,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Mise à jour de votre compte enseignant")
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.logger.Info("credentials update sent", zap.String("to", to))
	return nil
}
