package ui

import (
	"advocates/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// querySettledMsg carries a query that stayed unchanged for the quiet period
type querySettledMsg struct {
	query string
}

// pagerKind tells which content a pager run showed
type pagerKind int

const (
	pagerHelp pagerKind = iota
	pagerDetail
)

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	kind    pagerKind
	content string
	err     error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
