package app

// State represents the dispatcher's send lifecycle.
type State int

const (
	StateIdle    State = iota // ready for user input
	StateSending              // request issued, placeholder visible, awaiting settlement
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	default:
		return "unknown"
	}
}
