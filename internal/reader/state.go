package reader

// State is a step of a scan run. A run walks Idle, Authenticating,
// Extracting, Querying, Decoding and ends in Presenting, or in Failed from
// any step. Both end states return to Idle once the presenter has consumed
// the result.
type State int

const (
	StateIdle State = iota
	StateAuthenticating
	StateExtracting
	StateQuerying
	StateDecoding
	StatePresenting
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAuthenticating:
		return "authenticating"
	case StateExtracting:
		return "extracting"
	case StateQuerying:
		return "querying"
	case StateDecoding:
		return "decoding"
	case StatePresenting:
		return "presenting"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
