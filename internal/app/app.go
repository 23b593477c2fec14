package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/todo-popup/internal/controller"
	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/logging/events"
	"github.com/atomicstack/todo-popup/internal/template"
	"github.com/atomicstack/todo-popup/internal/todo"
	"github.com/atomicstack/todo-popup/internal/ui"
	"github.com/atomicstack/todo-popup/internal/view"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	// Filter is the route shown at startup ("", "active", "completed").
	Filter string
	// Seed titles are added before the program starts.
	Seed []string
}

// Page is a fully wired todo page: tree, view, store, controller and host.
type Page struct {
	Document   *dom.Document
	View       *view.View
	Store      todo.Store
	Controller *controller.Controller
	Model      *ui.Model
}

// New parses the page skeleton and wires every layer together.
func New(cfg Config) (*Page, error) {
	doc, err := dom.Parse(template.Index)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	v, err := view.New(doc, template.New())
	if err != nil {
		return nil, err
	}
	store := todo.NewStore()
	ctrl := controller.New(v, store)
	for _, title := range cfg.Seed {
		ctrl.AddItem(title)
	}
	events.App.Seeded(len(store.Items()))
	ctrl.SetView(cfg.Filter)

	model := ui.NewModel(doc, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Navigate:   ctrl.SetView,
	})
	return &Page{
		Document:   doc,
		View:       v,
		Store:      store,
		Controller: ctrl,
		Model:      model,
	}, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	page, err := New(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(page.Model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
