package events

import "github.com/atomicstack/todo-popup/internal/logging"

type DOMTracer struct{}

var DOM = DOMTracer{}

func (DOMTracer) Dispatch(eventType, tag, class string) {
	logging.Trace("dom.dispatch", map[string]interface{}{
		"type":  eventType,
		"tag":   tag,
		"class": class,
	})
}
