package app

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/slumber/internal/apperr"
	"github.com/ayoisaiah/slumber/internal/config"
	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/internal/osutil"
	"github.com/ayoisaiah/slumber/internal/pathutil"
	"github.com/ayoisaiah/slumber/internal/timeutil"
	"github.com/ayoisaiah/slumber/internal/ui"
	"github.com/ayoisaiah/slumber/mood"
	"github.com/ayoisaiah/slumber/notification"
	"github.com/ayoisaiah/slumber/report"
	"github.com/ayoisaiah/slumber/schedule"
	"github.com/ayoisaiah/slumber/session"
	"github.com/ayoisaiah/slumber/stats"
	"github.com/ayoisaiah/slumber/timer"
)

const (
	envNoColor        = "NO_COLOR"
	envSlumberNoColor = "SLUMBER_NO_COLOR"
)

var (
	errMissingArgs = &apperr.Error{
		Message: "expected arguments: %s",
	}

	errInvalidArg = &apperr.Error{
		Message: "%s must be an integer",
	}
)

// logCloser is the rotating log file opened in beforeAction.
var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(b, '\n'))

	return err
}

// watchAction opens the interactive logging screen.
func watchAction(_ *cli.Context, e *env) error {
	t, err := e.timer()
	if err != nil {
		return err
	}

	picker, err := e.picker()
	if err != nil {
		return err
	}

	ui.DarkTheme = e.cfg.Display.DarkTheme

	m := timer.NewModel(t, picker, e.hooks(), e.cfg)

	_, err = tea.NewProgram(m).Run()

	return err
}

func clock(e *env, ms int64) string {
	layout := "Jan 02 03:04 PM"
	if e.cfg.Settings.TwentyFourHour {
		layout = "Jan 02 15:04"
	}

	return timeutil.FromMillis(ms).Format(layout)
}

// startAction starts the sleep timer.
func startAction(_ *cli.Context, e *env) error {
	t, err := e.timer()
	if err != nil {
		return err
	}

	started, err := t.Start(e.at())
	if err != nil {
		return err
	}

	s := t.State()

	if !started {
		report.Info("The timer has been running since %s", clock(e, *s.StartTime))
		return nil
	}

	report.Success("Sleep timer started at %s", clock(e, *s.StartTime))

	return nil
}

// stopAction stops the sleep timer.
func stopAction(_ *cli.Context, e *env) error {
	t, err := e.timer()
	if err != nil {
		return err
	}

	stopped, err := t.Stop(e.at())
	if err != nil {
		return err
	}

	if !stopped {
		report.Info("The timer is not running")
		return nil
	}

	s := t.State()

	report.Success(
		"Slept %s (%s - %s). Run 'slumber save' to keep it",
		timeutil.FormatDuration(t.Elapsed(time.Now())),
		clock(e, *s.StartTime),
		clock(e, *s.EndTime),
	)

	return nil
}

// saveAction records the stopped session.
func saveAction(ctx *cli.Context, e *env) error {
	t, err := e.timer()
	if err != nil {
		return err
	}

	picker, err := e.picker()
	if err != nil {
		return err
	}

	selected, notes := picker.Selected(), e.cfg.CLI.Notes

	if ctx.Bool("prompt") {
		if t.Status() != models.Stopped {
			return timer.ErrNotStopped
		}

		selected, notes, err = mood.Prompt(picker, notes)
		if err != nil {
			return err
		}
	}

	sess, err := t.Save(selected, notes)
	if err != nil {
		return err
	}

	report.Success(
		"Saved %s of sleep with quality %s",
		ui.Cyan(sess.Duration),
		ui.Quality(sess.Quality),
	)

	if err := e.hooks().Run(&sess); err != nil {
		report.Warn(err)
	}

	return nil
}

// discardAction drops the current session.
func discardAction(_ *cli.Context, e *env) error {
	t, err := e.timer()
	if err != nil {
		return err
	}

	discarded, err := t.Discard()
	if err != nil {
		return err
	}

	if !discarded {
		report.Info("There is no session to discard")
		return nil
	}

	report.Success("Session discarded")

	return nil
}

// statusAction prints the state of the sleep timer.
func statusAction(_ *cli.Context, e *env) error {
	t, err := e.timer()
	if err != nil {
		return err
	}

	s := t.State()
	elapsed := ui.Yellow(timeutil.FormatDuration(t.Elapsed(time.Now())))

	switch s.Status {
	case models.Running:
		report.Info("Sleeping since %s: %s", clock(e, *s.StartTime), elapsed)
	case models.Stopped:
		report.Info(
			"Stopped, not saved: %s (%s - %s)",
			elapsed,
			clock(e, *s.StartTime),
			clock(e, *s.EndTime),
		)
	default:
		report.Info("The timer is idle")
	}

	return nil
}

// listAction prints recent sessions, newest first.
func listAction(ctx *cli.Context, e *env) error {
	sessions, err := session.Load(e.db)
	if err != nil {
		return err
	}

	recent := stats.Recent(sessions, e.cfg.Limit())

	switch {
	case ctx.Bool("json"):
		return writeJSON(config.Stdout, recent)
	case ctx.Bool("yaml"):
		return writeYAML(config.Stdout, recent)
	}

	return listSessions(config.Stdout, recent, e.cfg.Settings.TwentyFourHour)
}

// historyAction charts recent sessions or serves the history page.
func historyAction(ctx *cli.Context) error {
	if ctx.Bool("serve") {
		return serveHistory(ctx)
	}

	return withEnv(printHistory)(ctx)
}

// serveHistory runs the history page without holding the store open, so
// the timer commands keep working while the page is up.
func serveHistory(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	report.Info(
		"Serving sleep history at http://localhost:%d (Ctrl-C to stop)",
		cfg.Server.Port,
	)

	return stats.NewServer(opener(cfg), cfg.Limit()).
		ListenAndServe(sigCtx, cfg.Server.Port)
}

func printHistory(ctx *cli.Context, e *env) error {
	limit := e.cfg.Limit()

	sessions, err := session.Load(e.db)
	if err != nil {
		return err
	}

	points := stats.Chart(sessions, limit)

	if ctx.Bool("json") {
		return writeJSON(config.Stdout, points)
	}

	sum := stats.Summarize(session.Last(sessions, limit))

	stats.PrintSummary(config.Stdout, &sum)
	stats.PrintChart(config.Stdout, points)

	return nil
}

// moodsAction prints the mood catalog.
func moodsAction(_ *cli.Context, e *env) error {
	data := [][]string{{"#", "EMOJI", "LABEL"}}

	for i, m := range e.cfg.Moods {
		data = append(data, []string{strconv.Itoa(i + 1), m.Emoji, m.Label})
	}

	ui.PrintTable(data, config.Stdout)

	return nil
}

// notificationsAction prints the notification log.
func notificationsAction(_ *cli.Context, e *env) error {
	list, err := notification.NewLog(e.db).List()
	if err != nil {
		return err
	}

	if len(list) == 0 {
		report.Info("No notifications")
		return nil
	}

	data := [][]string{{"ID", "NOTIFICATION", "DATE"}}

	for _, n := range list {
		data = append(data, []string{n.ID, n.Text, clock(e, n.CreatedAt)})
	}

	ui.PrintTable(data, config.Stdout)

	return nil
}

// dismissAction removes a notification from the log.
func dismissAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingArgs.Fmt("ID")
	}

	err := notification.NewLog(e.db).Dismiss(id)
	if err != nil {
		return err
	}

	report.Success("Notification %s dismissed", id)

	return nil
}

func printSchedules(list []models.Schedule) {
	data := [][]string{{"ID", "BEDTIME", "WAKE UP", "CONFIDENCE"}}

	for _, s := range list {
		data = append(data, []string{
			strconv.Itoa(s.ID),
			s.Start,
			s.End,
			strconv.Itoa(timeutil.Round(s.Confidence*100)) + "%",
		})
	}

	ui.PrintTable(data, config.Stdout)
}

// scheduleAction prints the suggested sleep schedules.
func scheduleAction(_ *cli.Context, e *env) error {
	list, err := schedule.New(e.db).List()
	if err != nil {
		return err
	}

	printSchedules(list)

	return nil
}

func intArg(ctx *cli.Context, i int, name string) (int, error) {
	v := ctx.Args().Get(i)
	if v == "" {
		return 0, errMissingArgs.Fmt("ID MINUTES")
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errInvalidArg.Fmt(name)
	}

	return n, nil
}

// adjustAction shifts a schedule.
func adjustAction(ctx *cli.Context, e *env) error {
	id, err := intArg(ctx, 0, "ID")
	if err != nil {
		return err
	}

	minutes, err := intArg(ctx, 1, "MINUTES")
	if err != nil {
		return err
	}

	s, err := schedule.New(e.db).Adjust(id, minutes)
	if err != nil {
		return err
	}

	printSchedules([]models.Schedule{s})

	return nil
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	// writes the default config on first run
	_, err := config.New(config.WithViperConfig(pathutil.ConfigFilePath()))
	if err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.CommandContext(ctx.Context, editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	report.Style()

	// Disable colour output if NO_COLOR or SLUMBER_NO_COLOR is set
	for _, v := range []string{envNoColor, envSlumberNoColor} {
		if _, exists := os.LookupEnv(v); exists {
			report.DisableStyling()
		}
	}

	if ctx.Bool("no-color") {
		report.DisableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	logCloser, err = initLogger(ctx.Bool("debug"))
	if err != nil {
		return err
	}

	slog.InfoContext(ctx.Context, "starting slumber", slog.Any("args", ctx.Args().Slice()))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting slumber")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}
