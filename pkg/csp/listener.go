package csp

import (
	"fmt"
	"io"
)

// Listener receives one call per meaningful progress step of a running
// solver: a tentative or final assignment (variable and assignment set)
// or a domain reduction (assignment nil; variable set when a single
// domain was narrowed). Calls are synchronous and arrive on the
// solver's goroutine; a listener that needs to pace or marshal events
// elsewhere does so on its own side.
type Listener interface {
	StateChanged(problem *CSP, v *Variable, a *Assignment)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(problem *CSP, v *Variable, a *Assignment)

func (f ListenerFunc) StateChanged(problem *CSP, v *Variable, a *Assignment) {
	f(problem, v, a)
}

// LoggingListener writes a one-line description of every step to
// Writer, numbering steps from 1.
type LoggingListener struct {
	Writer io.Writer
	step   int
}

func (l *LoggingListener) StateChanged(problem *CSP, v *Variable, a *Assignment) {
	l.step++
	switch {
	case a == nil && v == nil:
		fmt.Fprintf(l.Writer, "step %d: domains reduced\n", l.step)
	case a == nil:
		fmt.Fprintf(l.Writer, "step %d: domain reduced at %s to %s\n", l.step, v, problem.Domain(*v))
	case v == nil:
		fmt.Fprintf(l.Writer, "step %d: assignment %s\n", l.step, a)
	default:
		value, _ := a.Value(*v)
		fmt.Fprintf(l.Writer, "step %d: assigned %s=%s\n", l.step, v, value)
	}
}
