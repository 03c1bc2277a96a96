package machine

import "fmt"

// RuleKey identifies the domain side of a transition: the pair observed by
// the head before the rule fires.
type RuleKey struct {
	State  State  `json:"state" yaml:"state"`
	Symbol Symbol `json:"symbol" yaml:"symbol"`
}

func (k RuleKey) String() string {
	return fmt.Sprintf("(%s, %s)", k.State, k.Symbol)
}

// Action is the effect side of a transition: what the machine writes, where
// the head goes and which state becomes current.
type Action struct {
	Next  State  `json:"next" yaml:"next"`
	Write Symbol `json:"write" yaml:"write"`
	Move  Move   `json:"move" yaml:"move"`
}

// Rule is one deterministic transition of the machine.
//
// A Definition carries rules as a flat list; compilation into a Table indexes
// them by RuleKey and rejects duplicates.
type Rule struct {
	When RuleKey `json:"when" yaml:"when"`
	Then Action  `json:"then" yaml:"then"`
}
