package events

import "github.com/atomicstack/todo-popup/internal/logging"

type TodoTracer struct{}

var Todo = TodoTracer{}

func (TodoTracer) Added(id int, title string) {
	logging.Trace("todo.add", map[string]interface{}{"id": id, "title": title})
}

func (TodoTracer) Updated(id int, title string, completed bool) {
	logging.Trace("todo.update", map[string]interface{}{"id": id, "title": title, "completed": completed})
}

func (TodoTracer) Removed(ids []int) {
	logging.Trace("todo.remove", map[string]interface{}{"ids": ids})
}

func (TodoTracer) Filter(filter string, visible int) {
	logging.Trace("todo.filter", map[string]interface{}{"filter": filter, "visible": visible})
}
