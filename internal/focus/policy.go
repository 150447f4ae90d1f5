// Package focus decides which window receives keyboard focus after the
// cursor lands on a display, and performs the focus change itself.
package focus

import (
	"fmt"
	"strings"
)

// Policy selects how the focus target on the destination display is chosen
type Policy int

const (
	// TopmostUnderPoint picks the frontmost window under the cursor that
	// does not already hold focus.
	TopmostUnderPoint Policy = iota

	// RememberedPerDisplay restores the window that held focus the last
	// time the cursor left the destination display.
	RememberedPerDisplay

	// NoFocus only moves the cursor.
	NoFocus
)

// DefaultPolicy is the policy used when none is configured
const DefaultPolicy = TopmostUnderPoint

var policyNames = map[Policy]string{
	TopmostUnderPoint:    "topmost",
	RememberedPerDisplay: "remembered",
	NoFocus:              "none",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// PolicyNames lists the accepted configuration values in display order
func PolicyNames() []string {
	return []string{
		TopmostUnderPoint.String(),
		RememberedPerDisplay.String(),
		NoFocus.String(),
	}
}

// ParsePolicy converts a configuration value into a Policy. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("unknown focus policy %q (valid: %s)", s, strings.Join(PolicyNames(), ", "))
}
