package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vango-dev/pact/internal/config"
	"github.com/vango-dev/pact/internal/demo"
	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/runtime"
)

// loadConfig reads the config named by path, or the one in the working
// directory. A missing default config yields the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if !config.Exists(wd) {
		return config.New(), nil
	}
	return config.Load(wd)
}

// session is a mounted demo application on an in-memory document.
type session struct {
	doc  *dom.Document
	root *runtime.Root

	// lastPatches holds the patches of the latest completed pass.
	lastPatches []string
}

// mountDemo mounts the demo application with the settings of cfg.
func mountDemo(cfg *config.Config, logger *slog.Logger, mw ...runtime.Middleware) (*session, error) {
	s := &session{doc: dom.NewDocument()}
	root, err := runtime.RenderRoot(s.doc, s.doc.CreateNode("div"), demo.App(logger),
		runtime.WithConfig(cfg),
		runtime.WithLogger(logger),
		runtime.WithMiddleware(mw...),
		runtime.WithMiddleware(s.record),
	)
	if err != nil {
		return nil, err
	}
	s.root = root
	return s, nil
}

func (s *session) record(next runtime.PassFunc) runtime.PassFunc {
	return func(ctx context.Context, info *runtime.PassInfo) error {
		err := next(ctx, info)
		s.lastPatches = info.Patches.Strings()
		return err
	}
}

// script describes the events a scripted run dispatches.
type script struct {
	increments int
	decrements int
	name       string
}

// run dispatches the scripted events. step is called after each one.
func (s *session) run(sc script, step func(label string)) error {
	buttons := dom.FindAll(s.root.Container(), "button")
	if len(buttons) < 2 {
		return fmt.Errorf("demo tree has %d buttons, want 2", len(buttons))
	}

	for i := 0; i < sc.increments; i++ {
		if err := s.doc.Dispatch(buttons[0], "click", ""); err != nil {
			return err
		}
		step("+1")
	}
	for i := 0; i < sc.decrements; i++ {
		if err := s.doc.Dispatch(buttons[1], "click", ""); err != nil {
			return err
		}
		step("-1")
	}
	if sc.name != "" {
		input := dom.Find(s.root.Container(), "input")
		if err := s.doc.Dispatch(input, "change", sc.name); err != nil {
			return err
		}
		step("name=" + sc.name)
	}
	return s.root.Err()
}

// writeTree prints the container markup.
func (s *session) writeTree(w io.Writer) {
	fmt.Fprintln(w, dom.InnerMarkup(s.root.Container()))
}
