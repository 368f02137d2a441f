package pipeline

// State is a step of a pipeline run.
type State int

const (
	AwaitInput State = iota
	Reading
	Previewing
	Transforming
	AwaitOutput
	ConfirmOverwrite
	Writing
	Done
	Cancelled
	Failed
)

var stateNames = [...]string{
	AwaitInput:       "await-input",
	Reading:          "reading",
	Previewing:       "previewing",
	Transforming:     "transforming",
	AwaitOutput:      "await-output",
	ConfirmOverwrite: "confirm-overwrite",
	Writing:          "writing",
	Done:             "done",
	Cancelled:        "cancelled",
	Failed:           "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == Done || s == Cancelled || s == Failed
}

// Result describes how a run ended.
type Result struct {
	State  State
	Trail  []State // every state entered, in order
	Input  string
	Output string
	Size   int64 // output size in bytes, set when State is Done
	Err    error // cause of Failed or Cancelled
}

// Reached reports whether the run entered s.
func (r Result) Reached(s State) bool {
	for _, t := range r.Trail {
		if t == s {
			return true
		}
	}
	return false
}
