// Package doctor runs environment diagnostics without touching the network.
package doctor

import (
	"fmt"

	"github.com/doeshing/shellmate-go/internal/domain"
	"github.com/doeshing/shellmate-go/internal/ports"
)

// Service checks whether an invocation on this machine could succeed.
type Service struct {
	Config     domain.Config
	ConfigPath string
	Prober     ports.SessionProber
	Clipboard  ports.Clipboard
}

// Run executes checks and returns a report.
func (s *Service) Run() domain.HealthReport {
	var checks []domain.HealthCheck

	checks = append(checks, ok("Config file", s.ConfigPath))

	if s.Config.Backend.Endpoint == "" {
		checks = append(checks, fail("Backend endpoint", "not configured; set SHELLMATE_API_ENDPOINT or backend.endpoint"))
	} else {
		checks = append(checks, ok("Backend endpoint", s.Config.Backend.Endpoint))
	}

	if s.Config.Backend.APIKey == "" {
		checks = append(checks, warn("API key", "not set; requests go out unauthenticated"))
	} else {
		checks = append(checks, ok("API key", "present"))
	}

	if s.Prober != nil {
		session := s.Prober.Probe()
		detail := fmt.Sprintf("%s (%s)", session.Family, session.ShellPath)
		if session.Family == domain.FamilyUnknown {
			checks = append(checks, warn("Shell", detail+"; commands will be shown for copy/paste only"))
		} else {
			checks = append(checks, ok("Shell", detail))
		}
		if session.Interactive {
			checks = append(checks, ok("Terminal", "interactive"))
		} else {
			checks = append(checks, warn("Terminal", "not interactive; confirmation prompts cannot run"))
		}
	}

	if s.Clipboard != nil {
		if s.Clipboard.Enabled() {
			checks = append(checks, ok("Clipboard", "utility found"))
		} else {
			checks = append(checks, warn("Clipboard", "no utility found (pbcopy/xclip/wl-copy/xsel)"))
		}
	}

	return domain.HealthReport{Checks: checks}
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
