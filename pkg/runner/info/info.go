package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/maplog/pkg/store"
)

// Info reports where entries are stored and how many there are.
type Info struct {
	Out         io.Writer
	Config      *store.FileConfig
	Persistence *store.Gateway
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("MAPLOG_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "MAPLOG_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "MAPLOG_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		return errors.New("info: no persistence configured")
	}

	file := n.Config.File
	if file == "" {
		file = "none"
	}
	home := "not set"
	if n.Config.Home != nil {
		home = fmt.Sprintf("%.5f,%.5f", n.Config.Home[0], n.Config.Home[1])
	}

	c, err := n.Persistence.Load(ctx)
	count := fmt.Sprint(c.Len())
	if err != nil {
		count = fmt.Sprintf("%d (%v)", c.Len(), err)
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Config.file:"), file)
	tbl.AddRow(bold.Sprint("Config.backend:"), n.Config.Backend())
	tbl.AddRow(bold.Sprint("Config.path:"), n.Config.BasePath())
	tbl.AddRow(bold.Sprint("Config.key:"), n.Config.Key())
	tbl.AddRow(bold.Sprint("Config.zoom:"), n.Config.Zoom)
	tbl.AddRow(bold.Sprint("Config.home:"), home)
	tbl.AddRow(bold.Sprint("Entries:"), count)
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
