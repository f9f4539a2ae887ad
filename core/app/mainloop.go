package app

import (
	"github.com/rs/zerolog/log"

	"github.com/ftl/aliascope/core"
)

// ParameterSource emits parameter changes.
type ParameterSource interface {
	Changes() <-chan core.ParameterChange
	Close() error
}

type eventHandler interface {
	Handle(core.ParameterChange)
}

// NewMainLoop returns a main loop that delivers the changes of the given source to the given handler.
func NewMainLoop(source ParameterSource, handler eventHandler) *MainLoop {
	return &MainLoop{
		source:  source,
		handler: handler,
		command: make(chan command, 1),
	}
}

type command func()

// MainLoop delivers parameter changes one at a time. Each change is handled completely before the
// next one is received.
type MainLoop struct {
	source  ParameterSource
	handler eventHandler
	command chan command
}

// Run the main loop until stop is closed or the source is exhausted.
func (m *MainLoop) Run(stop <-chan struct{}) {
	defer log.Debug().Msg("main loop shutdown")
	changes := m.source.Changes()
	for {
		select {
		case change, ok := <-changes:
			if !ok {
				return
			}
			m.handler.Handle(change)
		case command := <-m.command:
			command()
		case <-stop:
			return
		}
	}
}

// Do executes the given function within the main loop.
func (m *MainLoop) Do(f func()) {
	select {
	case m.command <- f:
	default:
		log.Warn().Msg("main loop command queue hangs")
	}
}
