// Package shell owns the confirmation layer: probing the invoking shell,
// presenting a command for explicit approval, and executing approved text.
package shell

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/doeshing/shellmate-go/internal/domain"
	"github.com/doeshing/shellmate-go/internal/ports"
)

// Prober takes the shell session snapshot from $SHELL and the terminal.
type Prober struct{}

// NewProber builds a session prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe implements ports.SessionProber. The snapshot is taken once; nothing
// re-reads the environment afterwards.
func (p *Prober) Probe() domain.ShellSession {
	path := os.Getenv("SHELL")
	return domain.ShellSession{
		Family:      FamilyFor(path),
		ShellPath:   path,
		Interactive: stdioIsTerminal(),
	}
}

// FamilyFor maps a shell path to its capability family. zsh can push text
// onto its editor buffer stack; bash and sh expose readline pre-fill; anything
// else gets print-and-copy treatment.
func FamilyFor(shellPath string) domain.ShellFamily {
	switch filepath.Base(shellPath) {
	case "zsh":
		return domain.FamilyBufferPrePopulating
	case "bash", "sh":
		return domain.FamilyLineEditing
	default:
		return domain.FamilyUnknown
	}
}

func stdioIsTerminal() bool {
	for _, fd := range []uintptr{os.Stdin.Fd(), os.Stdout.Fd()} {
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return false
		}
	}
	return true
}

var _ ports.SessionProber = (*Prober)(nil)
