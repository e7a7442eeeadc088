package domain

// ShellFamily enumerates how the invoking shell can receive a command for
// review before execution.
type ShellFamily string

const (
	// FamilyBufferPrePopulating shells (zsh) can load text into the line
	// editor buffer uncommitted.
	FamilyBufferPrePopulating ShellFamily = "buffer-pre-populating"
	// FamilyLineEditing shells (bash, sh with readline) can open an edit
	// prompt pre-filled with text.
	FamilyLineEditing ShellFamily = "line-editing"
	// FamilyUnknown shells get the command printed for manual copy/paste.
	FamilyUnknown ShellFamily = "unknown"
)

// ShellSession is a read-only snapshot of the invoking shell, taken once when
// the confirmation layer is entered.
type ShellSession struct {
	Family      ShellFamily
	ShellPath   string
	Interactive bool
}

// ShellState names the confirmation states. A query reaches exactly one of
// StateExecuting or StateCancelled.
type ShellState string

const (
	StateIdle            ShellState = "idle"
	StateAwaitingCommand ShellState = "awaiting-command"
	StatePresenting      ShellState = "presenting"
	StateExecuting       ShellState = "executing"
	StateCancelled       ShellState = "cancelled"
)
