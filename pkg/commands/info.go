package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/maplog/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where entries are stored.",
		Example: `
maplog info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			n := info.Info{
				Out:         cmd.OutOrStdout(),
				Config:      s.config,
				Persistence: s.gateway,
			}
			return n.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
