package model

// EventKind classifies journal events.
type EventKind string

const (
	EventSpawn EventKind = "spawn"
	EventDeath EventKind = "death"
)

// Death causes recorded in Event.Detail.
const (
	CauseHealth = "health"
	CauseWarmth = "warmth"
)

// Event is an immutable record of something that happened during a turn.
type Event struct {
	Turn     int
	Kind     EventKind
	Map      string
	Pos      Position
	ObjectID uint32
	Species  string
	Detail   string
}

// Recorder receives simulation events. Implementations must not block.
type Recorder interface {
	Record(ev Event)
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) Record(Event) {}
