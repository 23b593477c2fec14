package events

import "github.com/atomicstack/todo-popup/internal/logging"

type ViewTracer struct{}

var View = ViewTracer{}

func (ViewTracer) Render(command string, payload interface{}) {
	logging.Trace("view.render", map[string]interface{}{"command": command, "payload": payload})
}

func (ViewTracer) Bind(event string) {
	logging.Trace("view.bind", map[string]interface{}{"event": event})
}

func (ViewTracer) Emit(event string, payload interface{}) {
	logging.Trace("view.emit", map[string]interface{}{"event": event, "payload": payload})
}

func (ViewTracer) MissingItem(command string, id int) {
	logging.Trace("view.missing-item", map[string]interface{}{"command": command, "id": id})
}

func (ViewTracer) MissingFilter(filter string) {
	logging.Trace("view.missing-filter", map[string]interface{}{"filter": filter})
}
