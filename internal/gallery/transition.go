package gallery

import (
	"fmt"
	"strings"
)

// Op names a browser operation.
type Op string

const (
	OpFilter   Op = "filter"
	OpOpen     Op = "open"
	OpClose    Op = "close"
	OpNext     Op = "next"
	OpPrevious Op = "previous"
)

// ParseOp maps a wire name to an Op. "prev" is accepted for previous.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "filter":
		return OpFilter, nil
	case "open":
		return OpOpen, nil
	case "close":
		return OpClose, nil
	case "next":
		return OpNext, nil
	case "previous", "prev":
		return OpPrevious, nil
	}
	return "", fmt.Errorf("unknown gallery operation %q", s)
}

// State is the browser state in a form that fits in a URL or a JSON body.
type State struct {
	Category string `json:"category"`
	Selected int    `json:"selected"` // 0 when the viewer is closed
}

// Action is one user input. Category is read by OpFilter and ID by OpOpen.
type Action struct {
	Op       Op     `json:"op"`
	Category string `json:"category,omitempty"`
	ID       int    `json:"id,omitempty"`
}

// Apply returns the state reached by running a from s. It is the stateless
// counterpart of Browser.Do for callers that keep state outside the process,
// such as links and request bodies.
func Apply(c *Catalog, s State, a Action) State {
	b := Restore(c, s)
	b.Do(a)
	return b.State()
}
