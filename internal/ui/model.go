package ui

import (
	"reflect"
	"strconv"

	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/logging/events"
	"github.com/atomicstack/todo-popup/internal/theme"
	uistate "github.com/atomicstack/todo-popup/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModeEntry
	ModeJump
)

func (m Mode) String() string {
	switch m {
	case ModeEntry:
		return "entry"
	case ModeJump:
		return "jump"
	default:
		return "browse"
	}
}

const (
	selectorItems      = ".todo-list li"
	selectorNewTodo    = ".new-todo"
	selectorToggleAll  = ".toggle-all"
	selectorClear      = ".clear-completed"
	selectorFilterLink = ".filters a"
	selectorMain       = ".main"
	selectorFooter     = ".footer"
	selectorCounter    = ".todo-count"
	selectorTitle      = "h1"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the terminal host.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	// Navigate receives the href of a filter link after it is clicked, the way
	// a browser would change location.
	Navigate func(route string)
}

// Model implements the Bubble Tea model for the todo page.
type Model struct {
	doc  *dom.Document
	list uistate.List
	mode Mode

	input textinput.Model
	entry *dom.Element

	jump       textinput.Model
	jumpOrigin int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	showHelp    bool
	navigate    func(route string)
	errMsg      string

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps doc in a terminal host.
func NewModel(doc *dom.Document, opts Options) *Model {
	input := newTextInput()
	jump := newTextInput()
	jump.Placeholder = "jump to…"
	m := &Model{
		doc:        doc,
		input:      input,
		jump:       jump,
		showFooter: opts.ShowFooter,
		navigate:   opts.Navigate,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	m.syncFromDocument()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// newTextInput returns a prompt-less input with a steady cursor. Key handling
// is synchronous, so the input never schedules blink ticks.
func newTextInput() textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Cursor.SetMode(cursor.CursorStatic)
	return input
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	var cmd tea.Cmd
	switch m.mode {
	case ModeEntry:
		m.input, cmd = m.input.Update(msg)
	case ModeJump:
		m.jump, cmd = m.jump.Update(msg)
	}
	return m, cmd
}

// Mode reports the current input mode.
func (m *Model) Mode() Mode { return m.mode }

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.list.EnsureCursorVisible(m.maxVisibleRows())
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(m.mode.String(), key.String())
	if key.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	m.errMsg = ""
	var cmd tea.Cmd
	switch m.mode {
	case ModeEntry:
		cmd = m.handleEntryKey(key)
	case ModeJump:
		cmd = m.handleJumpKey(key)
	default:
		cmd = m.handleBrowseKey(key)
	}
	m.syncFromDocument()
	return cmd
}

// syncFromDocument re-reads rows, focus and input values from the tree.
func (m *Model) syncFromDocument() {
	m.list.SetRows(m.readRows())

	active := m.doc.ActiveElement()
	if !isTextInput(active) {
		if m.mode == ModeEntry {
			m.mode = ModeBrowse
		}
		m.entry = nil
		m.input.Blur()
		m.list.EnsureCursorVisible(m.maxVisibleRows())
		return
	}
	if m.entry != active {
		m.entry = active
		m.input.Placeholder = active.Attr("placeholder")
		m.input.SetValue(active.Value())
		m.input.CursorEnd()
		m.input.Focus()
		events.UI.Focus(active.TagName(), active.ClassName())
	} else if m.input.Value() != active.Value() {
		m.input.SetValue(active.Value())
		m.input.CursorEnd()
	}
	m.mode = ModeEntry
	if li := dom.ParentWithTag(active, "li"); li != nil {
		if id, err := strconv.Atoi(li.Dataset("id")); err == nil {
			m.list.Select(m.list.IndexOf(id))
		}
	}
	m.list.EnsureCursorVisible(m.maxVisibleRows())
}

func (m *Model) readRows() []uistate.Row {
	items := m.doc.QueryAll(selectorItems, nil)
	rows := make([]uistate.Row, 0, len(items))
	for _, li := range items {
		id, err := strconv.Atoi(li.Dataset("id"))
		if err != nil {
			continue
		}
		title := ""
		if label := m.doc.QueryOne("label", li); label != nil {
			title = label.TextContent()
		}
		rows = append(rows, uistate.Row{
			ID:        id,
			Title:     title,
			Completed: li.HasClass("completed"),
			Editing:   li.HasClass("editing"),
		})
	}
	return rows
}

// itemElement returns the <li> for the row under the cursor.
func (m *Model) itemElement() *dom.Element {
	row, ok := m.list.Current()
	if !ok {
		return nil
	}
	return m.doc.QueryOne(`.todo-list [data-id="`+strconv.Itoa(row.ID)+`"]`, nil)
}

func isTextInput(el *dom.Element) bool {
	return el != nil && el.TagName() == "input" && !el.IsCheckbox()
}
