package eventbus

import "mini-os/internal/logger"

// LogHandler writes every event it receives to the logger.
type LogHandler struct {
	logger logger.Logger
}

func NewLogHandler(log logger.Logger) *LogHandler {
	return &LogHandler{logger: log}
}

func (h *LogHandler) Handle(event Event) {
	fields := make(map[string]interface{}, len(event.Data)+1)
	for k, v := range event.Data {
		fields[k] = v
	}
	fields["at"] = event.Timestamp

	if event.Type == AppRejected {
		h.logger.Warning("EventBus", event.Type, fields)
		return
	}
	h.logger.Info("EventBus", event.Type, fields)
}

func (h *LogHandler) ID() string {
	return "log"
}

// SubscribeAll registers handler for every lifecycle event type.
func SubscribeAll(bus *Bus, handler Handler) {
	for _, t := range []string{WindowOpened, WindowClosed, AppLaunched, AppRejected} {
		bus.Subscribe(t, handler)
	}
}
