package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const emptyStateText = "No upcoming events found in your calendar."

type palette struct {
	text     lipgloss.Color
	muted    lipgloss.Color
	accent   lipgloss.Color
	danger   lipgloss.Color
	success  lipgloss.Color
	birthday lipgloss.Color
	meeting  lipgloss.Color
	reminder lipgloss.Color
}

var palettes = map[Theme]palette{
	ThemeDark: {
		text:     lipgloss.Color("#F9FAFB"),
		muted:    lipgloss.Color("#9CA3AF"),
		accent:   lipgloss.Color("#A78BFA"),
		danger:   lipgloss.Color("#F87171"),
		success:  lipgloss.Color("#34D399"),
		birthday: lipgloss.Color("#F472B6"),
		meeting:  lipgloss.Color("#60A5FA"),
		reminder: lipgloss.Color("#FBBF24"),
	},
	ThemeLight: {
		text:     lipgloss.Color("#111827"),
		muted:    lipgloss.Color("#6B7280"),
		accent:   lipgloss.Color("#7C3AED"),
		danger:   lipgloss.Color("#DC2626"),
		success:  lipgloss.Color("#059669"),
		birthday: lipgloss.Color("#DB2777"),
		meeting:  lipgloss.Color("#2563EB"),
		reminder: lipgloss.Color("#D97706"),
	},
}

type styles struct {
	header  lipgloss.Style
	group   lipgloss.Style
	count   lipgloss.Style
	card    lipgloss.Style
	title   lipgloss.Style
	detail  lipgloss.Style
	errMsg  lipgloss.Style
	toast   lipgloss.Style
	muted   lipgloss.Style
	typeTag map[EventType]lipgloss.Style
}

func newStyles(t Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[ThemeLight]
	}
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(p.accent).MarginBottom(1),
		group:  lipgloss.NewStyle().Bold(true).Foreground(p.text),
		count:  lipgloss.NewStyle().Foreground(p.muted),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		title:  lipgloss.NewStyle().Bold(true).Foreground(p.text),
		detail: lipgloss.NewStyle().Foreground(p.muted),
		errMsg: lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		toast:  lipgloss.NewStyle().Bold(true).Foreground(p.success),
		muted:  lipgloss.NewStyle().Foreground(p.muted),
		typeTag: map[EventType]lipgloss.Style{
			EventTypeBirthday: lipgloss.NewStyle().Foreground(p.birthday),
			EventTypeMeeting:  lipgloss.NewStyle().Foreground(p.meeting),
			EventTypeReminder: lipgloss.NewStyle().Foreground(p.reminder),
		},
	}
}

// Render draws the screen for state.
func Render(state ViewState) string {
	st := newStyles(state.Theme)
	var blocks []string

	if state.Toast != "" {
		blocks = append(blocks, st.toast.Render(state.Toast))
	}
	if state.Error != "" {
		blocks = append(blocks, st.errMsg.Render(state.Error))
	}

	if !state.SignedIn {
		blocks = append(blocks, st.muted.Render("Signed out. Sign in to see your upcoming events."))
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	if state.Header != "" {
		blocks = append(blocks, st.header.Render(state.Header))
	}

	switch {
	case state.Loading:
		blocks = append(blocks, st.muted.Render("Loading events..."))
	case state.Agenda.Empty:
		blocks = append(blocks, st.muted.Render(emptyStateText))
	default:
		for _, g := range state.Agenda.Groups {
			blocks = append(blocks, renderGroup(st, g))
		}
	}

	if state.Form.Open {
		blocks = append(blocks, renderForm(st, state.Form))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderGroup(st styles, g GroupView) string {
	lines := []string{st.group.Render(g.Title) + " " + st.count.Render(fmt.Sprintf("(%d)", g.Count))}
	for _, c := range g.Cards {
		lines = append(lines, renderCard(st, c))
	}
	return strings.Join(lines, "\n")
}

func renderCard(st styles, c EventCard) string {
	title := st.title.Render(c.Title)
	if tag, ok := st.typeTag[c.Type]; ok {
		title += " " + tag.Render("["+string(c.Type)+"]")
	}
	details := st.detail.Render(c.DateLabel + " · " + c.TimeLabel)
	return st.card.Render(title + "\n" + details)
}

func renderForm(st styles, f EventForm) string {
	clock := f.Time
	if clock == "" {
		clock = "(all day)"
	}
	body := strings.Join([]string{
		st.title.Render("New Event"),
		"Title: " + f.Title,
		"Date:  " + f.Date,
		"Time:  " + clock,
		st.muted.Render("[" + f.SaveLabel() + "]"),
	}, "\n")
	return st.card.Render(body)
}
