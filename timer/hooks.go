package timer

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/notification"
)

// Hooks run after a session is saved. A failing hook never undoes the save.
type Hooks struct {
	Log     *notification.Log
	notify  func(title, msg string) error
	Cmd     string
	Desktop bool
}

// NewHooks returns the post-save hooks. log may be nil.
func NewHooks(log *notification.Log, desktop bool, cmd string) *Hooks {
	return &Hooks{
		Log:     log,
		Desktop: desktop,
		Cmd:     cmd,
		notify:  notification.Desktop,
	}
}

func summary(sess *models.SleepSession) string {
	text := fmt.Sprintf(
		"🛌 Logged %s of sleep (quality %d)",
		sess.Duration,
		sess.Quality,
	)

	if sess.Mood != nil {
		text += " feeling " + sess.Mood.String()
	}

	return text
}

// runCmd executes the user's post-save command.
func runCmd(command string) error {
	if command == "" {
		return nil
	}

	args, err := shellquote.Split(command)
	if err != nil {
		return errHookCmd.Wrap(err)
	}

	if len(args) == 0 {
		return nil
	}

	err = exec.Command(args[0], args[1:]...).Run()
	if err != nil {
		return errHookCmd.Wrap(err)
	}

	return nil
}

func logFailure(sess *models.SleepSession, err error) error {
	if err != nil {
		slog.Error(
			"post-save hook failed",
			slog.Int64("session", sess.ID),
			slog.Any("error", err),
		)
	}

	return err
}

// Record adds the session summary to the notification log. It writes to the
// store, so it must finish before the store is closed.
func (h *Hooks) Record(sess *models.SleepSession) error {
	if h == nil || h.Log == nil {
		return nil
	}

	_, err := h.Log.Add(summary(sess))

	return logFailure(sess, err)
}

// Notify sends the desktop notification and runs the user's command. It
// does not touch the store.
func (h *Hooks) Notify(sess *models.SleepSession) error {
	if h == nil {
		return nil
	}

	var errs []error

	if h.Desktop && h.notify != nil {
		err := h.notify("Sleep session saved", summary(sess))
		if err != nil {
			errs = append(errs, err)
		}
	}

	if err := runCmd(h.Cmd); err != nil {
		errs = append(errs, err)
	}

	return logFailure(sess, errors.Join(errs...))
}

// Run executes every hook for sess and returns their combined errors.
func (h *Hooks) Run(sess *models.SleepSession) error {
	return errors.Join(h.Record(sess), h.Notify(sess))
}
