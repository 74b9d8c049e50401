package input

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// TerminalSource captures keys and mouse clicks from a tcell screen.
//
// Terminals report presses but not releases, so every key press is
// delivered as a KeyDown immediately followed by a KeyUp.
type TerminalSource struct {
	screen tcell.Screen
	logger *zap.Logger
	quit   func()

	events   chan Event
	started  bool
	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
}

// TerminalConfig holds the dependencies of a TerminalSource
type TerminalConfig struct {
	// Screen defaults to a new terminal screen
	Screen tcell.Screen
	Buffer int
	// Quit is called when the user presses Ctrl+C or Escape
	Quit   func()
	Logger *zap.Logger
}

func NewTerminalSource(cfg *TerminalConfig) (*TerminalSource, error) {
	if cfg == nil {
		cfg = &TerminalConfig{}
	}

	screen := cfg.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}

	size := cfg.Buffer
	if size <= 0 {
		size = 64
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	quit := cfg.Quit
	if quit == nil {
		quit = func() {}
	}

	return &TerminalSource{
		screen: screen,
		logger: logger,
		quit:   quit,
		events: make(chan Event, size),
		done:   make(chan struct{}),
	}, nil
}

func (s *TerminalSource) Start(ctx context.Context) error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse(tcell.MouseButtonEvents)
	s.screen.Clear()
	s.screen.Show()
	s.started = true

	raw := make(chan tcell.Event, cap(s.events))
	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		defer close(raw)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			select {
			case raw <- ev:
			case <-s.done:
				return
			}
		}
	}()
	go func() {
		defer s.wg.Done()
		defer close(s.events)
		s.translate(ctx, raw)
	}()
	return nil
}

func (s *TerminalSource) Events() <-chan Event {
	return s.events
}

func (s *TerminalSource) Stop() error {
	s.stopOnce.Do(func() {
		close(s.done)
		if s.started {
			s.screen.Fini()
		}
	})
	s.wg.Wait()
	return nil
}

func (s *TerminalSource) translate(ctx context.Context, raw <-chan tcell.Event) {
	var lastButtons tcell.ButtonMask
	for {
		var ev tcell.Event
		var ok bool
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case ev, ok = <-raw:
			if !ok {
				return
			}
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
				s.quit()
				continue
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			s.send(KeyDown(ev.Rune()))
			s.send(KeyUp(ev.Rune()))
		case *tcell.EventMouse:
			buttons := ev.Buttons()
			pressed := buttons &^ lastButtons
			lastButtons = buttons
			if pressed&tcell.Button1 != 0 {
				s.send(MouseDown(ButtonLeft))
			}
			if pressed&tcell.Button2 != 0 {
				s.send(MouseDown(ButtonRight))
			}
			if pressed&tcell.Button3 != 0 {
				s.send(MouseDown(ButtonMiddle))
			}
		}
	}
}

func (s *TerminalSource) send(ev Event) {
	select {
	case s.events <- ev:
	default:
		s.logger.Warn("input buffer full, dropping event", zap.Stringer("event", ev))
	}
}
