package core

// Action represents a semantic game command, abstracted from physical key presses
// and window events.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionStart             // Enter, Space - leave the start screen
	ActionPause             // P
	ActionResume            // Y
	ActionRestart           // R
	ActionQuit              // Q, Ctrl+C
	ActionFocusEnter        // terminal gained focus
	ActionFocusLeave        // terminal lost focus
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionFocusEnter:
		return "FocusEnter"
	case ActionFocusLeave:
		return "FocusLeave"
	default:
		return "Unknown"
	}
}

// InputQueue holds the actions received since the last simulation tick in
// arrival order. Order matters: two turns issued within one tick are applied
// one after the other.
type InputQueue struct {
	actions []Action
}

// Push appends an action. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.actions = append(q.actions, a)
}

// Len returns the number of queued actions.
func (q *InputQueue) Len() int {
	return len(q.actions)
}

// Drain returns the queued actions and empties the queue.
func (q *InputQueue) Drain() []Action {
	out := q.actions
	q.actions = nil
	return out
}
