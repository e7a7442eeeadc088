// Package query orchestrates a single query resolution end-to-end.
package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/doeshing/shellmate-go/internal/domain"
	"github.com/doeshing/shellmate-go/internal/ports"
)

// Service is the top-level dispatcher: it validates the invocation, resolves
// the query against the backend, and routes the command to the confirmation
// shell or straight to stdout.
type Service struct {
	Config   domain.Config
	Resolver ports.Resolver
	Shell    ports.ConfirmationShell
	Logger   ports.Logger

	// Stdout defaults to os.Stdout; swapped in tests.
	Stdout io.Writer
}

// Run processes a single natural-language query.
func (s *Service) Run(req domain.QueryRequest) (domain.QueryResponse, error) {
	if s.Resolver == nil || s.Logger == nil {
		return domain.QueryResponse{}, errors.New("query.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}
	out := s.Stdout
	if out == nil {
		out = os.Stdout
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return domain.QueryResponse{}, domain.ErrEmptyQuery
	}
	if s.Config.Backend.Endpoint == "" {
		return domain.QueryResponse{}, domain.ErrEndpointNotConfigured
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	q := domain.Query{
		Text: text,
		Context: domain.ExecContext{
			OS:  runtime.GOOS,
			CWD: wd,
		},
	}

	s.Logger.Debug("resolving query", map[string]interface{}{
		"endpoint": s.Config.Backend.Endpoint,
		"os":       q.Context.OS,
		"cwd":      q.Context.CWD,
	})

	resp := s.Resolver.Resolve(ctx, q)
	if resp.Kind != domain.ResponseSuccess {
		return domain.QueryResponse{}, &domain.BackendError{Response: resp}
	}
	if req.Debug {
		s.Logger.Debug("authoritative response", map[string]interface{}{
			"command": resp.Command,
		})
	}

	if req.Seamless {
		fmt.Fprintln(out, escapeForSubstitution(resp.Command))
		return domain.QueryResponse{Command: resp.Command}, nil
	}

	if s.Shell == nil {
		return domain.QueryResponse{}, errors.New("confirmation shell not configured")
	}
	if s.Config.Preferences.ShowPrompt {
		fmt.Fprintf(out, "Query: %s\n", text)
	}

	outcome, err := s.Shell.Present(ctx, resp.Command, text)
	return domain.QueryResponse{
		Command:  resp.Command,
		State:    outcome.State,
		ExitCode: outcome.ExitCode,
	}, err
}

// escapeForSubstitution doubles backslashes so that a shell command
// substitution consuming the seamless output unescapes back to the original
// command.
func escapeForSubstitution(command string) string {
	return strings.ReplaceAll(command, `\`, `\\`)
}
