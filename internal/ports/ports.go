// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends only on these abstractions; the concrete
// adapters live in the infrastructure layer. This keeps the query pipeline
// independent of the HTTP client, the terminal, and the host shell.
package ports

import (
	"context"

	"github.com/doeshing/shellmate-go/internal/domain"
)

// ConfigProvider loads the configuration snapshot from persistent storage.
// Implementations typically read from ~/.shellmate/config.yaml and fold in
// environment overrides.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Invoker issues exactly one backend call per invocation and classifies the
// outcome. Retrying is not its concern.
type Invoker interface {
	Invoke(context.Context, domain.Query) domain.BackendResponse
}

// Resolver produces the authoritative BackendResponse for a query, applying
// whatever retry policy it is configured with.
type Resolver interface {
	Resolve(context.Context, domain.Query) domain.BackendResponse
}

// Decoder extracts a command string from a raw backend response body.
// ok is false when the body carries no usable command field.
type Decoder interface {
	Decode(body []byte) (command string, ok bool)
}

// ConfirmOutcome reports where the confirmation state machine ended up.
type ConfirmOutcome struct {
	State    domain.ShellState
	ExitCode int
}

// ConfirmationShell presents a command for explicit user approval and, on
// confirmation, executes it. It is the only component allowed to execute text.
type ConfirmationShell interface {
	Present(ctx context.Context, command, query string) (ConfirmOutcome, error)
}

// CommandExecutor hands a confirmed command string to the host shell and
// reports its exit code.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (int, error)
}

// SessionProber takes the read-only shell session snapshot.
type SessionProber interface {
	Probe() domain.ShellSession
}

// Clipboard copies text to the system clipboard when a utility is available.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
