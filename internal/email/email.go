// Package email selects the alert sender named by configuration.
package email

import (
	"fmt"
	"strings"

	"docforensics/internal/config"
	"docforensics/internal/email/noop"
	"docforensics/internal/email/ses"
	"docforensics/internal/port"
)

// NewSender returns the AlertSender for cfg.Provider ("noop" or "ses").
func NewSender(cfg *config.EmailConfig) (port.AlertSender, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "noop":
		return noop.NewNoopSender(), nil
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName)
	default:
		return nil, fmt.Errorf("unknown email provider: %q", cfg.Provider)
	}
}
