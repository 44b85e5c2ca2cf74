package ecs

import (
	"github.com/phanxgames/dualdial"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SelectionEventType is the Donburi event type for dial events.
var SelectionEventType = events.NewEventType[dualdial.SelectionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a SelectionSink backed by a Donburi world. Events
// are queued on SelectionEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) dualdial.SelectionSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitSelection(event dualdial.SelectionEvent) {
	SelectionEventType.Publish(s.world, event)
}
