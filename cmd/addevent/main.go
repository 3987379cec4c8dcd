package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/corbaltcode/gcal-agenda/core"
	"github.com/joho/godotenv"
)

func main() {
	var (
		title = flag.String("title", "", "Event title (required)")
		date  = flag.String("date", "", "Event date (YYYY-MM-DD, default today in AGENDA_TIMEZONE)")
		clock = flag.String("time", "", "Start time (HH:MM); omit for an all-day event")
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
	*date = defaultDate(*date, now)

	session := core.NewSession(cfg.Authenticator())
	err = insert(context.Background(), os.Stdout, session, cfg.CalendarFactory(loc, now), now, *title, *date, *clock)
	if err != nil {
		core.Die("%v", err)
	}
}

// defaultDate fills an empty date with today in the configured zone.
func defaultDate(date string, now func() time.Time) string {
	if date != "" {
		return date
	}
	return now().Format("2006-01-02")
}

// insert creates one event. The inputs are checked before the consent flow
// starts, and the token is revoked before returning.
func insert(ctx context.Context, out io.Writer, session *core.Session, newCalendar core.CalendarFactory,
	now func() time.Time, title, date, clock string) error {
	if err := core.ValidateEventInput(title, date); err != nil {
		return err
	}

	if err := session.SignIn(ctx); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	defer func() {
		if err := session.SignOut(ctx); err != nil {
			log.Printf("Error revoking token: %v", err)
		}
	}()

	token, err := session.AccessToken()
	if err != nil {
		return err
	}
	cal, err := newCalendar(ctx, token)
	if err != nil {
		return fmt.Errorf("calendar client: %w", err)
	}

	ev, err := cal.CreateEvent(ctx, title, date, clock)
	if err != nil {
		log.Printf("insert %q (date=%s time=%s) failed: %v", title, date, clock, err)
		return fmt.Errorf("create event: %w", err)
	}
	t := now()
	fmt.Fprintf(out, "Inserted %q id=%s (%s, %s)\n", ev.Title(), ev.ID,
		core.FormatEventDate(t, ev.Start),
		core.FormatEventTime(ev.Start, ev.End, t.Location()))
	return nil
}
