package events

import "github.com/atomicstack/todo-popup/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Seeded(count int) {
	logging.Trace("app.seeded", map[string]interface{}{"count": count})
}
