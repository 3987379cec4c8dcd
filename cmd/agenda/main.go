package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/charmbracelet/lipgloss"
	"github.com/corbaltcode/gcal-agenda/core"
	"github.com/joho/godotenv"
)

const help = `commands:
  r  refresh events
  a  add an event
  t  toggle dark/light theme
  s  sign in again
  o  sign out and quit
  q  quit`

func main() {
	// If we're on Lambda runtime
	if core.IsLambda {
		lambda.Start(core.NewAgendaHandler(core.LoadConfig(nil)).Handle)
		return
	}

	var (
		asJSON    = flag.Bool("json", false, "Print the agenda as JSON and exit")
		prefsPath = flag.String("prefs", "", "Preferences file (default: $XDG_CONFIG_HOME/gcal-agenda/preferences.yml)")
	)
	flag.Parse()
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, relying on environment vars")
	}

	cfg := core.LoadConfig(nil)
	loc, err := cfg.Location()
	if err != nil {
		core.Die("%v", err)
	}
	now := func() time.Time { return time.Now().In(loc) }

	session := core.NewSession(cfg.Authenticator())
	app := core.NewApp(session, cfg.CalendarFactory(loc, now),
		core.WithAppClock(now),
		core.WithThemeStore(core.NewThemeStore(*prefsPath)),
		core.WithSystemTheme(lipgloss.HasDarkBackground),
	)

	ctx := context.Background()
	if err := app.SignIn(ctx); err != nil {
		core.Die("%s", app.State().Error)
	}

	if *asJSON {
		out, err := core.PrettyJSON(app.State().Agenda)
		if err != nil {
			core.Die("encode agenda: %v", err)
		}
		fmt.Println(out)
		app.SignOut(ctx)
		return
	}

	run(ctx, app, bufio.NewScanner(os.Stdin))
}

func run(ctx context.Context, app *core.App, in *bufio.Scanner) {
	show(app)
	for {
		fmt.Print("\n> ")
		if !in.Scan() {
			return
		}
		switch strings.TrimSpace(in.Text()) {
		case "r":
			_ = app.Refresh(ctx)
		case "a":
			addEvent(ctx, app, in)
		case "t":
			_ = app.ToggleTheme()
		case "s":
			_ = app.SignIn(ctx)
		case "o":
			app.SignOut(ctx)
			show(app)
			return
		case "q":
			return
		default:
			fmt.Println(help)
			continue
		}
		show(app)
	}
}

// addEvent fills the form from the prompt. A failed save keeps the form and
// its fields so the user can retry.
func addEvent(ctx context.Context, app *core.App, in *bufio.Scanner) {
	if err := app.OpenForm(); err != nil {
		return
	}
	for {
		form := app.State().Form
		title := prompt(in, "Title", form.Title)
		date := prompt(in, "Date (YYYY-MM-DD)", form.Date)
		clock := prompt(in, "Time (HH:MM, empty for all day)", form.Time)
		app.FillForm(title, date, clock)
		if err := app.SaveForm(ctx); err == nil || !app.State().Form.Open {
			return
		}
		show(app)
		if !strings.EqualFold(prompt(in, "Retry? (y/N)", ""), "y") {
			app.CloseForm()
			return
		}
	}
}

func show(app *core.App) {
	fmt.Println(core.Render(app.State()))
}

func prompt(in *bufio.Scanner, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !in.Scan() {
		return def
	}
	v := strings.TrimSpace(in.Text())
	if v == "" {
		return def
	}
	return v
}
