package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/foundry/model"
)

// ActionFunc turns a matched rule into at most one order for the target.
// Returning ok=false means the rule decided to hold.
type ActionFunc func(env Env) (move model.Move, ok bool)

// Rule is the atomic unit of allocation behavior: a condition → action pair.
// The engine evaluates rules by priority and uses Category + Exclusive
// so only one decision is made per target and category.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // grouping for exclusive semantics
	Exclusive    bool        // if true, blocks lower-priority rules in same category
	ConditionSrc string      // expr source
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
