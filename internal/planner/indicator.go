package planner

// StepState is how a step is drawn in the progress indicator.
type StepState int

const (
	StepPending StepState = iota
	StepCurrent
	StepCompleted
)

func (s StepState) String() string {
	switch s {
	case StepCurrent:
		return "current"
	case StepCompleted:
		return "completed"
	default:
		return "pending"
	}
}

// StepStatus is one entry of the progress indicator.
type StepStatus struct {
	Step  Step
	Name  string
	State StepState
}

// Indicator projects the current step over all four steps.
func Indicator(current Step) []StepStatus {
	out := make([]StepStatus, 0, StepCount)
	for _, step := range Steps() {
		st := StepPending
		switch {
		case step < current:
			st = StepCompleted
		case step == current:
			st = StepCurrent
		}
		out = append(out, StepStatus{Step: step, Name: step.String(), State: st})
	}
	return out
}
