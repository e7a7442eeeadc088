package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/shellmate-go/internal/domain"
	"github.com/doeshing/shellmate-go/internal/ports"
)

// Confirmer drives the accept/edit/cancel interaction. A command reaches
// execution only after the user submits it from a pre-filled editor line;
// every other path ends in cancellation.
type Confirmer struct {
	session    domain.ShellSession
	editors    []LineEditor
	executor   ports.CommandExecutor
	logger     ports.Logger
	out        io.Writer
	showPrompt bool

	state domain.ShellState
}

// NewConfirmer wires the confirmation layer for one invocation.
func NewConfirmer(cfg domain.Config, session domain.ShellSession, executor ports.CommandExecutor, clipboard ports.Clipboard, logger ports.Logger) *Confirmer {
	return &Confirmer{
		session:  session,
		executor: executor,
		editors: []LineEditor{
			zshEditor{},
			bashEditor{},
			displayPresenter{out: os.Stdout, clipboard: clipboard},
		},
		logger:     logger,
		out:        os.Stdout,
		showPrompt: cfg.Preferences.ShowPrompt,
		state:      domain.StateIdle,
	}
}

// State reports the current (or final) confirmation state.
func (c *Confirmer) State() domain.ShellState {
	return c.state
}

// Present implements ports.ConfirmationShell.
func (c *Confirmer) Present(ctx context.Context, command, query string) (ports.ConfirmOutcome, error) {
	c.transition(domain.StateAwaitingCommand)
	c.transition(domain.StatePresenting)

	if c.showPrompt {
		fmt.Fprintf(c.out, "Generated command: %s\n", command)
		fmt.Fprintln(c.out, "Press Enter to execute, or Ctrl+C to cancel:")
	}

	prompt := promptFor(c.session)
	for _, editor := range c.editors {
		if !editor.Available(c.session) {
			continue
		}

		line, err := editor.Edit(ctx, command, prompt)
		switch {
		case errors.Is(err, errDisplayOnly):
			fmt.Fprintf(c.out, "Or run:\n  %s\n", rerunHint(query))
			return c.cancel(0), nil
		case errors.Is(err, errEditorUnavailable):
			c.logger.Debug("line editor unavailable, trying next", map[string]interface{}{
				"editor": editor.Name(),
				"error":  err.Error(),
			})
			continue
		case err != nil:
			// The editor started and then failed or was interrupted;
			// falling through to another provider could execute text the
			// user just refused, so this always cancels.
			fmt.Fprintln(c.out, "\nCommand cancelled")
			return c.cancel(1), nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Fprintln(c.out, "No command to execute")
			return c.cancel(1), nil
		}

		c.transition(domain.StateExecuting)
		code, execErr := c.executor.Execute(ctx, line)
		return ports.ConfirmOutcome{State: domain.StateExecuting, ExitCode: code}, execErr
	}

	// Unreachable: the display presenter serves every session.
	return c.cancel(1), fmt.Errorf("no line editor available")
}

func (c *Confirmer) cancel(code int) ports.ConfirmOutcome {
	c.transition(domain.StateCancelled)
	return ports.ConfirmOutcome{State: domain.StateCancelled, ExitCode: code}
}

func (c *Confirmer) transition(next domain.ShellState) {
	c.logger.Debug("confirmation state", map[string]interface{}{
		"from": string(c.state),
		"to":   string(next),
	})
	c.state = next
}

// promptFor picks the familiar prompt glyph for the detected shell.
func promptFor(s domain.ShellSession) string {
	if s.Family == domain.FamilyBufferPrePopulating {
		return "% "
	}
	return "$ "
}

var _ ports.ConfirmationShell = (*Confirmer)(nil)
