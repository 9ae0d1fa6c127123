package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/maplog/pkg/commands/options"
	"tableflip.dev/maplog/pkg/entry"
	"tableflip.dev/maplog/pkg/snake"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry at a map location",
		Example: `
maplog add --lat 38.7223 --lng -9.1393 --title Morning --location Park --tag 178
maplog add --lat 38.7223 --lng -9.1393 --variant Pending --tag 523 --elevation 120
maplog add -i
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !eo.Interactive {
				return nil
			}
			variants := make([]string, 0, 2)
			for _, v := range entry.AllVariants() {
				variants = append(variants, v.String())
			}
			p := &snake.Prompter{
				In:       cmd.InOrStdin(),
				Out:      cmd.OutOrStdout(),
				Choices:  map[string][]string{"variant": variants},
				Optional: map[string]bool{"title": true, "location": true, "elevation": true},
			}
			return p.PromptFlags(cmd, options.EntryFlags...)
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
			s.mp.Click(eo.Coordinates())

			e, err := s.app.Submit(ctx, eo.Form())
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.WriteJSON(cmd.OutOrStdout(), e.Record())
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s\n", e.ID, e)
			return nil
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
