package rules

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"

	"github.com/nstehr/foundry/model"
)

// Engine runs compiled rules against each allocation decision.
// Rules fire in priority order; exclusive rules block lower-priority rules
// in the same category, so a target never gets conflicting orders.
type Engine struct {
	rules    []*Rule
	doctrine Doctrine
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule, d Doctrine) (*Engine, error) {
	d.Validate()
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled, doctrine: d}, nil
}

// NewDoctrineEngine builds an engine from the rules compiled out of d.
func NewDoctrineEngine(d Doctrine) (*Engine, error) {
	return NewEngine(CompileDoctrine(d), d)
}

func (e *Engine) Doctrine() Doctrine { return e.doctrine }

// RuleNames lists the rules in evaluation order.
func (e *Engine) RuleNames() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

// Evaluate runs all rules against one decision and collects the orders
// their actions produce.
func (e *Engine) Evaluate(env Env) []model.Move {
	fired := make(map[string]bool) // category → exclusive rule already fired
	var moves []model.Move

	for _, r := range e.rules {
		if fired[r.Category] {
			continue
		}

		result, err := vm.Run(r.program, env)
		if err != nil {
			log.Warn().Err(err).Str("rule", r.Name).Int("target", env.Target.ID).Msg("rule condition error")
			continue
		}

		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		log.Debug().Str("rule", r.Name).Int("priority", r.Priority).Int("target", env.Target.ID).Msg("rule fired")

		if m, ok := r.Action(env); ok {
			moves = append(moves, m)
		}

		if r.Exclusive {
			fired[r.Category] = true
		}
	}
	return moves
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		if r.Action == nil {
			return nil, fmt.Errorf("rule %q has no action", r.Name)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
