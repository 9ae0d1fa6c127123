package commands

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/maplog/pkg/app"
	"tableflip.dev/maplog/pkg/entry"
	"tableflip.dev/maplog/pkg/printers"
	"tableflip.dev/maplog/pkg/store"
)

// session is one App run with the terminal standing in for map, list and form.
type session struct {
	app     *app.App
	config  *store.FileConfig
	gateway *store.Gateway
	backend store.Backend
	log     *zap.SugaredLogger

	mp     *printers.Map
	list   *printers.List
	form   *printers.Form
	alerts *printers.Alerter
}

func openSession(cmd *cobra.Command, showID bool) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := lo.Logger()
	if err != nil {
		return nil, err
	}
	backend, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	surface := cmd.OutOrStdout()
	if oo.JSON {
		surface = io.Discard
	}
	out := printers.PrettyPrint{Out: surface, ShowID: showID, Verbose: lo.Verbose}
	s := &session{
		config:  cfg,
		gateway: store.NewGateway(backend, cfg.Key(), log),
		backend: backend,
		log:     log,
		mp:      &printers.Map{PrettyPrint: out},
		list:    &printers.List{PrettyPrint: out},
		form:    &printers.Form{PrettyPrint: out},
		alerts:  &printers.Alerter{PrettyPrint: printers.PrettyPrint{Out: cmd.ErrOrStderr()}},
	}
	s.app = app.New(app.Options{
		Map:     s.mp,
		List:    s.list,
		Form:    s.form,
		Locator: printers.StaticLocator{Home: cfg.Home},
		Alerter: s.alerts,
		Gateway: s.gateway,
		Factory: &entry.Factory{IDs: entry.NewIDSource(uint64(uuid.New().ID()))},
		Logger:  log,
		Zoom:    cfg.Zoom,
	})
	return s, nil
}

// start runs App.Start and, when needMap is set, fails if no position could
// be resolved.
func (s *session) start(ctx context.Context, needMap bool) error {
	if err := s.app.Start(ctx); err != nil {
		return err
	}
	if needMap && !s.app.MapReady() {
		return errors.Join(app.ErrMapNotReady, errors.New("set home.lat and home.lng in .maplog.yaml"))
	}
	return nil
}

func (s *session) Close() error {
	_ = s.log.Sync()
	return s.backend.Close()
}
