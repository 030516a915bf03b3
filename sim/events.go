package sim

import (
	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/transition"
)

type EventKind int

const (
	// EventRoomDirty asks the renderer to redraw the room tiles.
	EventRoomDirty EventKind = iota
	EventScrolled
	EventTransitioned
	EventSound
	EventItemCollected
	EventDamaged
	EventDied
	EventPlayerDied
	EventWon
)

// Event is one thing that happened during a tick. Data holds the payload
// named next to each kind.
type Event struct {
	Kind EventKind
	Data any
}

// Transitioned is the payload of EventTransitioned.
type Transitioned struct {
	From  transition.RoomKey
	To    transition.RoomKey
	Dir   transition.Direction
	Music string
	// NewRegion is set when the transition crossed into another region.
	NewRegion bool
}

// Collected is the payload of EventItemCollected.
type Collected struct {
	Name   string
	Effect string
	Key    string
}

// Damaged is the payload of EventDamaged and EventDied.
type Damaged struct {
	ID     int
	Name   string
	Amount int
}

func scrolled(v common.Vec) Event { return Event{Kind: EventScrolled, Data: v} }

// EventQueue is a FIFO drained by the shell after each tick.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
