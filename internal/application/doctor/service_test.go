package doctor

import (
	"testing"

	"github.com/doeshing/shellmate-go/internal/domain"
)

type stubProber struct {
	session domain.ShellSession
}

func (s stubProber) Probe() domain.ShellSession { return s.session }

type stubClipboard struct {
	enabled bool
}

func (s stubClipboard) Enabled() bool     { return s.enabled }
func (s stubClipboard) Copy(string) error { return nil }

func statusOf(t *testing.T, report domain.HealthReport, name string) domain.HealthStatus {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check.Status
		}
	}
	t.Fatalf("check %q missing from report %+v", name, report)
	return ""
}

func TestRunFlagsMissingEndpoint(t *testing.T) {
	svc := &Service{
		Config:     domain.Config{},
		ConfigPath: "/home/u/.shellmate/config.yaml",
		Prober:     stubProber{session: domain.ShellSession{Family: domain.FamilyLineEditing, ShellPath: "/bin/bash", Interactive: true}},
		Clipboard:  stubClipboard{enabled: true},
	}

	report := svc.Run()
	if got := statusOf(t, report, "Backend endpoint"); got != domain.HealthError {
		t.Errorf("Backend endpoint status = %v, want error", got)
	}
	if got := statusOf(t, report, "API key"); got != domain.HealthWarn {
		t.Errorf("API key status = %v, want warn", got)
	}
	if got := statusOf(t, report, "Shell"); got != domain.HealthOK {
		t.Errorf("Shell status = %v, want ok", got)
	}
}

func TestRunReportsHealthyEnvironment(t *testing.T) {
	svc := &Service{
		Config: domain.Config{
			Backend: domain.BackendSettings{
				Endpoint: "https://api.example.com/v1/query",
				APIKey:   "k",
			},
		},
		ConfigPath: "/home/u/.shellmate/config.yaml",
		Prober:     stubProber{session: domain.ShellSession{Family: domain.FamilyBufferPrePopulating, ShellPath: "/bin/zsh", Interactive: true}},
		Clipboard:  stubClipboard{enabled: true},
	}

	report := svc.Run()
	for _, check := range report.Checks {
		if check.Status == domain.HealthError {
			t.Errorf("unexpected error check: %+v", check)
		}
	}
	if got := statusOf(t, report, "Terminal"); got != domain.HealthOK {
		t.Errorf("Terminal status = %v, want ok", got)
	}
}

func TestRunWarnsOnUnknownShellAndNoTTY(t *testing.T) {
	svc := &Service{
		Config: domain.Config{
			Backend: domain.BackendSettings{Endpoint: "https://api.example.com"},
		},
		Prober: stubProber{session: domain.ShellSession{Family: domain.FamilyUnknown, ShellPath: "/usr/bin/fish"}},
	}

	report := svc.Run()
	if got := statusOf(t, report, "Shell"); got != domain.HealthWarn {
		t.Errorf("Shell status = %v, want warn", got)
	}
	if got := statusOf(t, report, "Terminal"); got != domain.HealthWarn {
		t.Errorf("Terminal status = %v, want warn", got)
	}
}
