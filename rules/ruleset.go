package rules

// RuleSet is an ordered collection of device rules and fleet rules.
// Registration order is execution order; duplicates are allowed. A RuleSet
// is mutable while it is being built and must not be modified after it is
// handed to an Engine.
type RuleSet struct {
	rules []Rule
	fleet []FleetRule
}

// NewRuleSet creates an empty rule set
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// Add appends device rules in execution order and returns the set for
// chaining
func (s *RuleSet) Add(rules ...Rule) *RuleSet {
	s.rules = append(s.rules, rules...)
	return s
}

// AddFleet appends fleet rules in execution order and returns the set for
// chaining
func (s *RuleSet) AddFleet(rules ...FleetRule) *RuleSet {
	s.fleet = append(s.fleet, rules...)
	return s
}

// Len returns the number of device rules
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// FleetLen returns the number of fleet rules
func (s *RuleSet) FleetLen() int {
	return len(s.fleet)
}

// Empty reports whether the set contains no rules of either kind
func (s *RuleSet) Empty() bool {
	return len(s.rules) == 0 && len(s.fleet) == 0
}
