package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"syscall"

	"github.com/doeshing/shellmate-go/internal/ports"
)

// HostExecutor hands confirmed text to the ambient shell. It is the single
// point in the pipeline where arbitrary text is executed, and it only ever
// receives strings that passed explicit user confirmation.
type HostExecutor struct {
	shell string
}

// NewHostExecutor builds an executor; shell defaults to $SHELL, then /bin/sh.
func NewHostExecutor(shell string) *HostExecutor {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &HostExecutor{shell: shell}
}

// Execute implements ports.CommandExecutor. The command runs attached to the
// caller's stdio; its exit status becomes the pipeline's exit code. The child
// is deliberately not bound to ctx: once the user has confirmed, interrupt
// handling belongs to the command itself (a Ctrl-C reaches it through the
// foreground process group), and cancelling the surrounding context must not
// kill it mid-run.
func (e *HostExecutor) Execute(_ context.Context, command string) (int, error) {
	c := exec.Command(e.shell, "-c", command)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitStatus(exitErr), nil
	}
	if err != nil {
		return 1, err
	}
	return 0, nil
}

// exitStatus maps a finished process to a shell-convention exit code. A
// command that died from an unhandled signal reports 128+signal, the value
// the invoking shell would have produced itself.
func exitStatus(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}

var _ ports.CommandExecutor = (*HostExecutor)(nil)
