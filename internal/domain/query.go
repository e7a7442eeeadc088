package domain

import "context"

// ExecContext captures where a query was issued from. It is serialized into
// the backend request body verbatim.
type ExecContext struct {
	OS  string `json:"os"`
	CWD string `json:"cwd"`
}

// Query is the immutable unit of work for a single invocation: the user's
// natural-language text plus the execution context it was typed in.
type Query struct {
	Text    string
	Context ExecContext
}

// QueryRequest captures user intent originating from the CLI.
type QueryRequest struct {
	Context  context.Context
	Text     string
	Seamless bool
	Debug    bool
}

// QueryResponse is the canonical response propagated back to the CLI.
type QueryResponse struct {
	Command  string
	State    ShellState
	ExitCode int
}
