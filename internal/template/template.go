// Package template produces the markup the view inserts into the UI tree.
package template

import (
	_ "embed"
	htmltemplate "html/template"
	"strings"

	"github.com/atomicstack/todo-popup/internal/logging"
	"github.com/atomicstack/todo-popup/internal/todo"
)

// Index is the page skeleton holding every region the view binds to.
//
//go:embed index.html
var Index string

const (
	itemMarkup = `{{range .}}<li data-id="{{.ID}}"{{if .Completed}} class="completed"{{end}}>` +
		`<div class="view"><input class="toggle" type="checkbox"{{if .Completed}} checked{{end}}>` +
		`<label>{{.Title}}</label><button class="destroy"></button></div></li>{{end}}`
	counterMarkup = `<strong>{{.}}</strong> item{{if ne . 1}}s{{end}} left`
	clearMarkup   = `{{if gt . 0}}Clear completed{{end}}`
)

// Template renders list items, the remaining-items counter and the
// clear-completed label.
type Template struct {
	items   *htmltemplate.Template
	counter *htmltemplate.Template
	clear   *htmltemplate.Template
}

// New parses the built-in templates.
func New() *Template {
	return &Template{
		items:   htmltemplate.Must(htmltemplate.New("items").Parse(itemMarkup)),
		counter: htmltemplate.Must(htmltemplate.New("counter").Parse(counterMarkup)),
		clear:   htmltemplate.Must(htmltemplate.New("clear").Parse(clearMarkup)),
	}
}

// Show renders one <li> per item. Titles are escaped.
func (t *Template) Show(items []todo.Item) string {
	return execute(t.items, items)
}

// ItemCounter renders the "n items left" text.
func (t *Template) ItemCounter(active int) string {
	return execute(t.counter, active)
}

// ClearCompletedButton renders the clear-completed label, empty when nothing
// is completed.
func (t *Template) ClearCompletedButton(completed int) string {
	return execute(t.clear, completed)
}

func execute(tmpl *htmltemplate.Template, data interface{}) string {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		logging.Error(err)
		return ""
	}
	return sb.String()
}
