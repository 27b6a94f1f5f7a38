package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute runs cmd and returns the process exit code. Errors the presenter
// has not shown yet are printed to stderr.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !IsAlerted(err) {
			alertColor.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
