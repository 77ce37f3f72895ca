package rules

import "fmt"

// CategoryDispatch groups the rules that decide whether a target gets an order.
const CategoryDispatch = "dispatch"

// CompileDoctrine generates the allocation rule set from a doctrine.
// Conditions are built via fmt.Sprintf with interpolated values, so the
// compiler never generates invalid expr.
func CompileDoctrine(d Doctrine) []*Rule {
	d.Validate()
	var rules []*Rule

	rules = append(rules, &Rule{
		Name:         "hold-owned",
		Priority:     1000,
		Category:     CategoryDispatch,
		Exclusive:    true,
		ConditionSrc: `TargetOwned()`,
		Action:       ActionHold,
	})

	rules = append(rules, &Rule{
		Name:         "no-source",
		Priority:     900,
		Category:     CategoryDispatch,
		Exclusive:    true,
		ConditionSrc: `!HasSource()`,
		Action:       ActionHold,
	})

	if d.MaxDistance > 0 {
		rules = append(rules, &Rule{
			Name:         "out-of-range",
			Priority:     850,
			Category:     CategoryDispatch,
			Exclusive:    true,
			ConditionSrc: fmt.Sprintf(`Distance() > %d`, d.MaxDistance),
			Action:       ActionHold,
		})
	}

	if d.SkipCovered {
		rules = append(rules, &Rule{
			Name:         "skip-covered",
			Priority:     800,
			Category:     CategoryDispatch,
			Exclusive:    true,
			ConditionSrc: fmt.Sprintf(`FriendlyInbound() > TargetBots() + HostileInbound() + %d`, d.CoverMargin),
			Action:       ActionHold,
		})
	}

	rules = append(rules, &Rule{
		Name:         "capture",
		Priority:     500,
		Category:     CategoryDispatch,
		Exclusive:    true,
		ConditionSrc: `Sendable() > 0`,
		Action:       ActionCapture,
	})

	return rules
}
