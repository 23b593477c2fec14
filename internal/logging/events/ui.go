package events

import "github.com/atomicstack/todo-popup/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Key(mode, key string) {
	logging.Trace("ui.key", map[string]interface{}{"mode": mode, "key": key})
}

func (UITracer) Cursor(cursor, id int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor, "id": id})
}

func (UITracer) Focus(tag, class string) {
	logging.Trace("ui.focus", map[string]interface{}{"tag": tag, "class": class})
}

func (UITracer) Navigate(route string) {
	logging.Trace("ui.navigate", map[string]interface{}{"route": route})
}

func (UITracer) Jump(query string, index int) {
	logging.Trace("ui.jump", map[string]interface{}{"query": query, "index": index})
}
