package app

import (
	"errors"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/slumber/internal/config"
	"github.com/ayoisaiah/slumber/internal/pathutil"
	"github.com/ayoisaiah/slumber/mood"
	"github.com/ayoisaiah/slumber/notification"
	"github.com/ayoisaiah/slumber/session"
	"github.com/ayoisaiah/slumber/store"
	"github.com/ayoisaiah/slumber/timer"
)

// env is what every command needs: the loaded config and an open store.
type env struct {
	cfg *config.Config
	db  store.DB
}

func storePath(driver string) string {
	if driver == config.DriverSQLite {
		return pathutil.SQLiteFilePath()
	}

	return pathutil.BoltFilePath()
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// opener returns a function that opens the configured store.
func opener(cfg *config.Config) func() (store.DB, error) {
	return func() (store.DB, error) {
		return store.Open(cfg.Storage.Driver, storePath(cfg.Storage.Driver))
	}
}

// setup loads the configuration and opens the store.
func setup(ctx *cli.Context) (*env, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	db, err := opener(cfg)()
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, db: db}, nil
}

func (e *env) Close() error {
	return e.db.Close()
}

// at is the instant a start or stop applies to.
func (e *env) at() time.Time {
	if e.cfg.CLI.At.IsZero() {
		return time.Now()
	}

	return e.cfg.CLI.At
}

// timer returns the persisted sleep timer.
func (e *env) timer() (*timer.Timer, error) {
	scorer, err := session.NewScorer(e.cfg.Settings)
	if err != nil {
		return nil, err
	}

	t := timer.New(e.db, session.NewRecorder(scorer))

	return t, t.Load()
}

// picker returns a mood picker preselected with --mood, if given.
func (e *env) picker() (*mood.Picker, error) {
	p := mood.NewPicker(e.cfg.Moods, nil)

	if e.cfg.CLI.Mood != "" {
		if _, err := p.Select(e.cfg.CLI.Mood); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (e *env) hooks() *timer.Hooks {
	return timer.NewHooks(
		notification.NewLog(e.db),
		e.cfg.Notifications.Enabled,
		e.cfg.Settings.Cmd,
	)
}

// withEnv wraps an action so that it runs with a loaded env that is closed
// afterwards.
func withEnv(fn func(ctx *cli.Context, e *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) (err error) {
		e, err := setup(ctx)
		if err != nil {
			return err
		}

		defer func() {
			err = errors.Join(err, e.Close())
		}()

		return fn(ctx, e)
	}
}
