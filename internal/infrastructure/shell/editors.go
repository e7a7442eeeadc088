package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/alessio/shellescape"

	"github.com/doeshing/shellmate-go/internal/domain"
	"github.com/doeshing/shellmate-go/internal/ports"
)

// LineEditor presents a pre-filled, editable command line and returns what
// the user submitted. Editors form an ordered provider list; the first one
// that can serve the session wins.
type LineEditor interface {
	Name() string
	Available(domain.ShellSession) bool
	Edit(ctx context.Context, initial, prompt string) (string, error)
}

// errDisplayOnly marks the print-and-copy provider: the command was shown
// but nothing can be executed.
var errDisplayOnly = errors.New("display only")

// errEditorUnavailable means the editor could not start at all and the next
// provider should be tried.
var errEditorUnavailable = errors.New("editor unavailable")

// zshEditor loads the command into zsh's line editor via vared: the buffer
// arrives uncommitted and the user confirms with Enter or clears it.
type zshEditor struct{}

func (zshEditor) Name() string { return "zsh-buffer" }

func (zshEditor) Available(s domain.ShellSession) bool {
	if s.Family != domain.FamilyBufferPrePopulating || !s.Interactive {
		return false
	}
	_, err := exec.LookPath("zsh")
	return err == nil
}

const zshEditScript = `cmd="$1"; vared -p "$2" cmd && print -rn -- "$cmd"`

func (e zshEditor) Edit(ctx context.Context, initial, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, "zsh", "--no-rcs", "-c", zshEditScript, e.Name(), initial, prompt)
	return runEditor(cmd)
}

// bashEditor opens a readline prompt pre-filled with the command via
// `read -e -i`. It also serves buffer-pre-populating sessions when the zsh
// path is unavailable.
type bashEditor struct{}

func (bashEditor) Name() string { return "bash-readline" }

func (bashEditor) Available(s domain.ShellSession) bool {
	if s.Family == domain.FamilyUnknown || !s.Interactive {
		return false
	}
	_, err := exec.LookPath("bash")
	return err == nil
}

const bashEditScript = `read -r -e -i "$1" -p "$2" line && printf '%s' "$line"`

func (e bashEditor) Edit(ctx context.Context, initial, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, "bash", "--noprofile", "--norc", "-c", bashEditScript, e.Name(), initial, prompt)
	return runEditor(cmd)
}

// runEditor wires the editor subprocess to the terminal, capturing only its
// stdout (the submitted line). The line editor itself draws on stderr/tty.
func runEditor(cmd *exec.Cmd) (string, error) {
	var out bytes.Buffer
	cmd.Stdin = os.Stdin
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("%w: %v", errEditorUnavailable, err)
	}
	if err := cmd.Wait(); err != nil {
		// Non-zero exit covers Ctrl-C / Ctrl-D inside the editor.
		return "", err
	}
	return out.String(), nil
}

// displayPresenter is the terminal fallback: print the command with a
// copy/paste instruction, push it to the clipboard when possible, and never
// execute anything.
type displayPresenter struct {
	out       io.Writer
	clipboard ports.Clipboard
}

func (displayPresenter) Name() string { return "display" }

func (displayPresenter) Available(domain.ShellSession) bool { return true }

func (d displayPresenter) Edit(_ context.Context, initial, _ string) (string, error) {
	fmt.Fprintf(d.out, "  %s\n", initial)
	if d.clipboard != nil && d.clipboard.Enabled() {
		if err := d.clipboard.Copy(initial); err == nil {
			fmt.Fprintln(d.out, "Command copied to clipboard; paste it into your shell to run it.")
			return "", errDisplayOnly
		}
	}
	fmt.Fprintln(d.out, "Copy the line above into your shell to run it.")
	return "", errDisplayOnly
}

// rerunHint renders a seamless-mode invocation the user can paste to feed the
// command straight into their shell.
func rerunHint(query string) string {
	return fmt.Sprintf(`eval "$(shellmate --seamless %s)"`, shellescape.Quote(query))
}
