package components

// Phase is the lifecycle phase of a fire element, derived from its gates.
type Phase int

const (
	// PhaseIdle: Advance has never been called in this cycle.
	PhaseIdle Phase = iota
	// PhaseWaiting: timers armed, start delay not elapsed.
	PhaseWaiting
	// PhaseEmitting: fountain jet running / rocket rising.
	PhaseEmitting
	// PhaseStopping: no new emission, particles still animating.
	PhaseStopping
	// PhaseEnded: everything finished; waiting for the show restart.
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWaiting:
		return "waiting"
	case PhaseEmitting:
		return "emitting"
	case PhaseStopping:
		return "stopping"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// PhaseGates are the boolean phase boundaries of a fire element. Each gate
// is set once per cycle and only cleared by Reset.
type PhaseGates struct {
	Started  bool // timers armed
	CanStart bool // start delay elapsed
	CanStop  bool // active duration elapsed (or forced)
	Ended    bool // all particles done
}

// Phase returns the single phase the gates currently describe.
func (g PhaseGates) Phase() Phase {
	switch {
	case g.Ended:
		return PhaseEnded
	case g.CanStop:
		return PhaseStopping
	case g.CanStart:
		return PhaseEmitting
	case g.Started:
		return PhaseWaiting
	default:
		return PhaseIdle
	}
}

// Reset clears every gate.
func (g *PhaseGates) Reset() {
	*g = PhaseGates{}
}
