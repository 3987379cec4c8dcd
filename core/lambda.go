package core

import (
	"context"
	"fmt"
	"log"
	"time"
)

// AgendaRequest is the Lambda payload: a bearer token obtained elsewhere and
// the IANA zone to group and format in.
type AgendaRequest struct {
	AccessToken string `json:"accessToken"`
	Timezone    string `json:"timezone"`
}

type AgendaResponse struct {
	Header string `json:"header"`
	Agenda Agenda `json:"agenda"`
}

// AgendaHandler serves the agenda view model without the interactive flow.
type AgendaHandler struct {
	cfg Config
	now func() time.Time
}

func NewAgendaHandler(cfg Config, opts ...func(*AgendaHandler)) *AgendaHandler {
	h := &AgendaHandler{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func WithHandlerClock(now func() time.Time) func(*AgendaHandler) {
	return func(h *AgendaHandler) {
		h.now = now
	}
}

func (h *AgendaHandler) Handle(ctx context.Context, req AgendaRequest) (AgendaResponse, error) {
	if req.AccessToken == "" {
		return AgendaResponse{}, fmt.Errorf("%w: accessToken is required", ErrAuthDenied)
	}

	cfg := h.cfg
	if req.Timezone != "" {
		cfg.Timezone = req.Timezone
	}
	loc, err := cfg.Location()
	if err != nil {
		return AgendaResponse{}, err
	}
	now := func() time.Time { return h.now().In(loc) }

	cal, err := cfg.CalendarFactory(loc, now)(ctx, req.AccessToken)
	if err != nil {
		return AgendaResponse{}, err
	}
	events, err := cal.ListUpcomingEvents(ctx)
	if err != nil {
		log.Printf("lambda fetch events failed: %v", err)
		return AgendaResponse{}, fmt.Errorf("fetch events: %w", err)
	}

	t := now()
	return AgendaResponse{
		Header: FormatCurrentDate(t),
		Agenda: BuildAgenda(t, events),
	}, nil
}
