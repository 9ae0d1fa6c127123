package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/maplog/pkg/commands/options"
	"tableflip.dev/maplog/pkg/entry"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the stored entries",
		Example: `
maplog list
maplog list --show-id
maplog list --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()

			s, err := openSession(cmd, io.ShowID)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			if err := s.start(ctx, false); err != nil {
				return oo.HandleError(err)
			}

			if oo.JSON {
				records := []entry.Record{}
				for _, e := range s.app.Entries() {
					records = append(records, e.Record())
				}
				return oo.WriteJSON(cmd.OutOrStdout(), records)
			}
			s.list.Print("Entries")
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
