// Package cli exposes the cobra command surface.
package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellmate-go/internal/app"
	"github.com/doeshing/shellmate-go/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

const rootLong = `ShellMate converts natural language to shell commands.

The generated command is loaded into your shell's input line for review;
nothing runs until you press Enter. With --seamless the command is written
to stdout instead, for shell-function integration:

  shellmate "list all python files older than 5 days"
  shellmate -s "find large files in home directory"

Environment:
  SHELLMATE_API_ENDPOINT  backend endpoint URL (required)
  SHELLMATE_API_KEY       API key, sent as X-API-Key (optional)
  SHELLMATE_SHOW_PROMPT   set to false to suppress banners
  SHELLMATE_DEBUG         set to true for diagnostic logging`

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	var (
		seamless bool
		debug    bool
		timeout  time.Duration
	)

	root := &cobra.Command{
		Use:   "shellmate [query...]",
		Short: "Convert natural language to shell commands",
		Long:  rootLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return domain.NewExitError(1)
			}

			runCtx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				runCtx, cancel = context.WithTimeout(runCtx, timeout)
				defer cancel()
			}

			// Multiple arguments form a single query, quoted or not.
			req := domain.QueryRequest{
				Context:  runCtx,
				Text:     strings.Join(args, " "),
				Seamless: seamless,
				Debug:    debug,
			}

			resp, err := container.QueryService.Run(req)
			if err != nil {
				if seamless {
					// Keep both streams clean for programmatic capture.
					container.Logger.Debug("query failed", map[string]interface{}{
						"error": err.Error(),
					})
					return domain.NewExitError(1)
				}
				return err
			}
			if resp.ExitCode != 0 {
				return domain.NewExitError(resp.ExitCode)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolVarP(&seamless, "seamless", "s", false, "Output command to stdout for shell function integration")
	root.Flags().BoolVar(&debug, "debug", false, "Enable verbose logging")
	root.Flags().DurationVar(&timeout, "timeout", 0, "Overall deadline for the whole invocation (0 = none)")

	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
