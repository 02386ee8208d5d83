// Package transformation models the chain of transformation actions that is
// embedded in a delivery URL, e.g. "c_fill,h_200,w_300/e_grayscale".
package transformation

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultResponsiveWidth is appended to a chain when responsive width is on.
const DefaultResponsiveWidth = "c_limit,w_auto"

// Params are the qualifiers of a single action keyed by their short name,
// e.g. {"c": "fill", "w": "300"}.
type Params map[string]string

// String renders the qualifiers sorted by key and joined with commas.
// Qualifiers with an empty value are skipped.
func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "_" + p[k]
	}
	return strings.Join(parts, ",")
}

// Transformation is an ordered chain of actions. The zero value and a nil
// pointer are both empty chains.
type Transformation struct {
	actions []string
}

// New builds a chain from pre-rendered actions. Empty actions are dropped.
func New(actions ...string) *Transformation {
	t := &Transformation{}
	return t.Add(actions...)
}

// Parse splits a rendered chain on "/".
func Parse(s string) *Transformation {
	return New(strings.Split(s, "/")...)
}

// Action renders params as a single action string.
func Action(p Params) string {
	return p.String()
}

// Resize is a shortcut for a crop/width/height action. Zero dimensions are
// left out.
func Resize(crop string, width, height int) string {
	p := Params{"c": crop}
	if width > 0 {
		p["w"] = fmt.Sprint(width)
	}
	if height > 0 {
		p["h"] = fmt.Sprint(height)
	}
	return p.String()
}

// Add appends actions to the chain and returns it.
func (t *Transformation) Add(actions ...string) *Transformation {
	for _, a := range actions {
		if a = strings.Trim(a, "/"); a != "" {
			t.actions = append(t.actions, a)
		}
	}
	return t
}

// AddTransformation appends every action of other to the chain. A nil
// other is a no-op.
func (t *Transformation) AddTransformation(other fmt.Stringer) *Transformation {
	if other == nil {
		return t
	}
	if o, ok := other.(*Transformation); ok {
		if o == nil {
			return t
		}
		return t.Add(o.actions...)
	}
	return t.Add(other.String())
}

// Clone returns an independent copy of the chain.
func (t *Transformation) Clone() *Transformation {
	if t == nil {
		return nil
	}
	c := &Transformation{actions: make([]string, len(t.actions))}
	copy(c.actions, t.actions)
	return c
}

// Actions returns a copy of the rendered actions.
func (t *Transformation) Actions() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.actions...)
}

// IsEmpty reports whether the chain has no actions.
func (t *Transformation) IsEmpty() bool {
	return t == nil || len(t.actions) == 0
}

// String renders the chain joined with "/".
func (t *Transformation) String() string {
	if t == nil {
		return ""
	}
	return strings.Join(t.actions, "/")
}
