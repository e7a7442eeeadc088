package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellmate-go/internal/app"
	"github.com/doeshing/shellmate-go/internal/domain"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and shell integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := container.DoctorService.Run()
			renderReport(cmd.OutOrStdout(), report)
			for _, check := range report.Checks {
				if check.Status == domain.HealthError {
					return domain.NewExitError(1)
				}
			}
			return nil
		},
	}
}

func renderReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%-5s] %-16s %s\n", check.Status, check.Name, check.Details)
	}
}
