package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func addReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored entries",
		Example: `
maplog reset
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.app.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all entries removed")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
