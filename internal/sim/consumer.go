package sim

import "github.com/Saannndddyyyyy/best-manager/internal/event"

type Broadcaster interface {
	BroadcastJSON(v any)
}

// RegisterConsumers pushes every evaluated outcome to connected
// dashboard clients.
func RegisterConsumers(bus *event.Bus, ws Broadcaster) {

	bus.Subscribe(event.EventSimulationEvaluated, func(payload any) {

		res, ok := payload.(*Evaluated)
		if !ok {
			return
		}

		ws.BroadcastJSON(res)
	})
}
