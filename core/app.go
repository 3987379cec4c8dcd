package core

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

const (
	successToast    = "Event created successfully!"
	toastDuration   = 3 * time.Second
	signInFirst     = "Please sign in to create events."
	authNotReadyMsg = "Authentication not ready. Check GOOGLE_CLIENT_ID."
)

// Calendar is the remote calendar the agenda reads from and writes to.
type Calendar interface {
	ListUpcomingEvents(ctx context.Context) ([]CalendarEvent, error)
	CreateEvent(ctx context.Context, title, date, clock string) (CalendarEvent, error)
}

// CalendarFactory binds a Calendar to an access token.
type CalendarFactory func(ctx context.Context, token string) (Calendar, error)

// App ties the session, the calendar and the screen state together. Every
// action catches its own errors and shows them as the single current error
// message; the error is also returned so callers can choose an exit status.
type App struct {
	session     *Session
	newCalendar CalendarFactory
	themes      *ThemeStore
	systemDark  func() bool
	now         func() time.Time

	mu         sync.Mutex
	state      ViewState
	refreshes  uint64
	toastUntil time.Time
}

func NewApp(session *Session, newCalendar CalendarFactory, opts ...func(*App)) *App {
	a := &App{
		session:     session,
		newCalendar: newCalendar,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	var saved Theme
	if a.themes != nil {
		t, err := a.themes.Load()
		if err != nil {
			log.Printf("load theme preference: %v", err)
		}
		saved = t
	}
	a.state.Theme = ResolveTheme(saved, a.systemDark)
	return a
}

func WithAppClock(now func() time.Time) func(*App) {
	return func(a *App) {
		a.now = now
	}
}

func WithThemeStore(s *ThemeStore) func(*App) {
	return func(a *App) {
		a.themes = s
	}
}

// WithSystemTheme reports the system dark-mode preference, consulted while
// no theme is saved.
func WithSystemTheme(dark func() bool) func(*App) {
	return func(a *App) {
		a.systemDark = dark
	}
}

// State returns a snapshot of the screen. The success toast disappears once
// its display time has passed.
func (a *App) State() ViewState {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.state
	if s.Toast != "" && !a.now().Before(a.toastUntil) {
		s.Toast = ""
	}
	return s
}

// SignIn runs the consent flow and, on success, loads the agenda.
func (a *App) SignIn(ctx context.Context) error {
	if err := a.session.SignIn(ctx); err != nil {
		log.Printf("sign in failed: %v", err)
		if errors.Is(err, ErrAuthNotReady) {
			a.showError(authNotReadyMsg)
		} else {
			a.showError("Failed to get access token: " + err.Error())
		}
		return err
	}

	a.mu.Lock()
	a.state.SignedIn = true
	a.state.Error = ""
	a.state.Header = FormatCurrentDate(a.now())
	a.mu.Unlock()

	return a.Refresh(ctx)
}

// Refresh reloads the agenda. When refreshes overlap, only the most recently
// started one updates the screen.
func (a *App) Refresh(ctx context.Context) error {
	token, err := a.session.AccessToken()
	if err != nil {
		a.showError("No access token available. Please sign in again.")
		return err
	}

	a.mu.Lock()
	a.refreshes++
	ticket := a.refreshes
	a.state.Loading = true
	a.state.Error = ""
	a.state.Agenda = Agenda{}
	a.mu.Unlock()

	events, err := a.listEvents(ctx, token)

	a.mu.Lock()
	defer a.mu.Unlock()
	if ticket != a.refreshes {
		log.Printf("drop stale refresh ticket=%d latest=%d", ticket, a.refreshes)
		return nil
	}
	a.state.Loading = false
	if err != nil {
		log.Printf("fetch events failed: %v", err)
		a.state.Error = "Failed to fetch events: " + err.Error()
		return err
	}
	a.state.Header = FormatCurrentDate(a.now())
	a.state.Agenda = BuildAgenda(a.now(), events)
	return nil
}

func (a *App) listEvents(ctx context.Context, token string) ([]CalendarEvent, error) {
	cal, err := a.newCalendar(ctx, token)
	if err != nil {
		return nil, err
	}
	return cal.ListUpcomingEvents(ctx)
}

// OpenForm shows the create-event dialog.
func (a *App) OpenForm() error {
	if !a.session.SignedIn() {
		a.showError(signInFirst)
		return ErrSignedOut
	}
	a.mu.Lock()
	a.state.Form.Show(a.now())
	a.mu.Unlock()
	return nil
}

// FillForm sets the dialog fields as typed by the user.
func (a *App) FillForm(title, date, clock string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Form.Title = title
	a.state.Form.Date = date
	a.state.Form.Time = clock
}

func (a *App) CloseForm() {
	a.mu.Lock()
	a.state.Form.Close()
	a.mu.Unlock()
}

// SaveForm creates the event described by the dialog. Only one save runs at
// a time; on success the dialog closes, a toast is shown and the agenda is
// reloaded.
func (a *App) SaveForm(ctx context.Context) error {
	a.mu.Lock()
	form := a.state.Form
	if err := form.Validate(); err != nil {
		a.state.Error = err.Error()
		a.mu.Unlock()
		return err
	}
	token, err := a.session.AccessToken()
	if err != nil {
		a.state.Error = signInFirst
		a.state.Form.Close()
		a.mu.Unlock()
		return err
	}
	if form.Saving {
		a.mu.Unlock()
		return ErrSaveInProgress
	}
	a.state.Form.Saving = true
	a.mu.Unlock()

	created, err := a.createEvent(ctx, token, form)

	a.mu.Lock()
	a.state.Form.Saving = false
	if err != nil {
		log.Printf("create event failed: %v", err)
		a.state.Error = "Failed to create event: " + err.Error()
		a.mu.Unlock()
		return err
	}
	log.Printf("event created id=%s", created.ID)
	a.state.Form.Close()
	a.state.Error = ""
	a.state.Toast = successToast
	a.toastUntil = a.now().Add(toastDuration)
	a.mu.Unlock()

	return a.Refresh(ctx)
}

func (a *App) createEvent(ctx context.Context, token string, form EventForm) (CalendarEvent, error) {
	cal, err := a.newCalendar(ctx, token)
	if err != nil {
		return CalendarEvent{}, err
	}
	return cal.CreateEvent(ctx, form.Title, form.Date, form.Time)
}

// SignOut revokes the token, best effort, and resets the screen.
func (a *App) SignOut(ctx context.Context) {
	if err := a.session.SignOut(ctx); err != nil {
		log.Printf("Error revoking token: %v", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.refreshes++
	a.state = ViewState{Theme: a.state.Theme}
	a.toastUntil = time.Time{}
}

// ToggleTheme flips between dark and light and saves the choice.
func (a *App) ToggleTheme() error {
	a.mu.Lock()
	a.state.Theme = a.state.Theme.Toggled()
	theme := a.state.Theme
	a.mu.Unlock()

	if a.themes == nil {
		return nil
	}
	if err := a.themes.Save(theme); err != nil {
		log.Printf("save theme preference: %v", err)
		return err
	}
	return nil
}

func (a *App) showError(msg string) {
	a.mu.Lock()
	a.state.Error = msg
	a.mu.Unlock()
}
