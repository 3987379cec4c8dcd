package core

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/corbaltcode/gcal-agenda/utils"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	primaryCalendar = "primary"
	upcomingLimit   = 10
	timedEventSpan  = time.Hour
)

// CalendarClient lists and creates events on the primary calendar of the
// account the bearer token belongs to.
type CalendarClient struct {
	endpoint string
	http     *http.Client
	loc      *time.Location
	now      func() time.Time

	srv *calendar.Service
}

// WithCalendarEndpoint overrides the Calendar REST base URL. For testing.
func WithCalendarEndpoint(endpoint string) func(*CalendarClient) {
	return func(c *CalendarClient) {
		c.endpoint = endpoint
	}
}

// WithCalendarHTTPClient sets the client the bearer transport wraps.
func WithCalendarHTTPClient(h *http.Client) func(*CalendarClient) {
	return func(c *CalendarClient) {
		c.http = h
	}
}

// WithLocation sets the zone form dates and times are interpreted in.
func WithLocation(loc *time.Location) func(*CalendarClient) {
	return func(c *CalendarClient) {
		c.loc = loc
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) func(*CalendarClient) {
	return func(c *CalendarClient) {
		c.now = now
	}
}

// NewCalendarClient builds a client that presents token as a bearer token.
func NewCalendarClient(ctx context.Context, token string, opts ...func(*CalendarClient)) (*CalendarClient, error) {
	if token == "" {
		return nil, ErrSignedOut
	}

	c := &CalendarClient{
		http: &http.Client{Timeout: 30 * time.Second},
		loc:  time.Local,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	authed := &http.Client{
		Timeout: c.http.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.http.Transport,
		},
	}

	svcOpts := []option.ClientOption{option.WithHTTPClient(authed)}
	if c.endpoint != "" {
		endpoint := c.endpoint
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		svcOpts = append(svcOpts, option.WithEndpoint(endpoint))
	}

	srv, err := calendar.NewService(ctx, svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("calendar service: %w", err)
	}
	c.srv = srv
	return c, nil
}

// ListUpcomingEvents returns up to ten events that have not ended yet, with
// recurring events expanded, ordered by start time.
func (c *CalendarClient) ListUpcomingEvents(ctx context.Context) ([]CalendarEvent, error) {
	events, err := c.srv.Events.List(primaryCalendar).
		TimeMin(c.now().UTC().Format(time.RFC3339)).
		MaxResults(upcomingLimit).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	out := make([]CalendarEvent, 0, len(events.Items))
	for _, ev := range events.Items {
		if ev == nil {
			continue
		}
		out = append(out, fromAPIEvent(ev))
	}
	return out, nil
}

// CreateEvent adds an event titled title on date (YYYY-MM-DD). With a clock
// time it is a one-hour event starting then; without, an all-day event.
// Missing or malformed input is rejected with a ValidationError before any
// request is made.
func (c *CalendarClient) CreateEvent(ctx context.Context, title, date, clock string) (CalendarEvent, error) {
	ev, err := buildEvent(title, date, clock, c.loc)
	if err != nil {
		return CalendarEvent{}, err
	}

	created, err := c.srv.Events.Insert(primaryCalendar, ev).Context(ctx).Do()
	if err != nil {
		return CalendarEvent{}, classifyAPIError(err)
	}
	log.Printf("created event id=%s date=%s", created.Id, date)
	return fromAPIEvent(created), nil
}

func buildEvent(title, date, clock string, loc *time.Location) (*calendar.Event, error) {
	title = strings.TrimSpace(title)
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if err := ValidateEventInput(title, date); err != nil {
		return nil, err
	}

	day, err := utils.ParseDate(date, loc)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid date %q", date)}
	}

	ev := &calendar.Event{Summary: title}
	if clock == "" {
		// All-day end dates are exclusive.
		ev.Start = &calendar.EventDateTime{Date: formatDate(day)}
		ev.End = &calendar.EventDateTime{Date: formatDate(day.AddDate(0, 0, 1))}
		return ev, nil
	}

	offset, err := utils.ParseClock(clock)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid time %q", clock)}
	}
	y, m, d := day.Date()
	start := time.Date(y, m, d, int(offset/time.Hour), int(offset%time.Hour/time.Minute), 0, 0, loc)
	end := start.Add(timedEventSpan)
	ev.Start = &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)}
	ev.End = &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)}
	return ev, nil
}
