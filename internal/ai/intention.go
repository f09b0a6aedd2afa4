package ai

// Intention is what a creature decided to do with its turn.
type Intention uint8

const (
	IntentionIdle Intention = iota
	IntentionGraze
	IntentionWander
)

func (i Intention) String() string {
	switch i {
	case IntentionIdle:
		return "idle"
	case IntentionGraze:
		return "graze"
	case IntentionWander:
		return "wander"
	default:
		return "unknown"
	}
}
