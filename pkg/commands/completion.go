package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/maplog/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(maplog completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(maplog completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

func idCompletions(toComplete string) []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	b, err := store.Open(cfg)
	if err != nil {
		return nil
	}
	defer b.Close()

	c, _ := store.NewGateway(b, cfg.Key(), nil).Load(context.Background())
	ids := make([]string, 0, c.Len())
	for _, e := range c.All() {
		if strings.HasPrefix(e.ID, toComplete) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
