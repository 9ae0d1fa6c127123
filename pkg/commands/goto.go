package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/maplog/pkg/commands/options"
	"tableflip.dev/maplog/pkg/view"
)

func addGoto(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "goto <id>",
		Short: "Move the map to an entry",
		Example: `
maplog goto 0059400123-1
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return idCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()

			s, err := openSession(cmd, false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			if err := s.start(ctx, true); err != nil {
				return oo.HandleError(err)
			}

			e, ok := s.app.ListClicked(view.ItemID(args[0]))
			if !ok {
				return oo.HandleError(fmt.Errorf("no entry with id %q", args[0]))
			}
			if oo.JSON {
				return oo.WriteJSON(cmd.OutOrStdout(), e.Record())
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), e)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
