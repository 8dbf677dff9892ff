// Package permission maps a firm's FCA permissions to the policy
// documents it must hold and filters the clause library down to what
// applies to that firm.
package permission

import "github.com/regbook/regbook/internal/model"

// requirementRule binds a permission predicate to the template codes it
// obliges. Rules are evaluated in order and results accumulate; order
// here only affects output ordering, not selection.
type requirementRule struct {
	Applies   func(model.PermissionSet) bool
	Templates []string
}

// RequirementRules is the permission → required-policy table.
var RequirementRules = []requirementRule{
	// Every authorised firm holds these.
	{
		Applies:   func(model.PermissionSet) bool { return true },
		Templates: []string{"AML_CTF"},
	},
	// Retail exposure brings the Consumer Duty vulnerability obligations.
	{
		Applies:   func(p model.PermissionSet) bool { return p.RetailClients },
		Templates: []string{"VULNERABLE_CUST"},
	},
	// Payment and e-money firms must safeguard relevant funds.
	{
		Applies:   func(p model.PermissionSet) bool { return p.PaymentServices || p.EMoneyIssuance },
		Templates: []string{"SAFEGUARDING"},
	},
}

// RequiredTemplates returns the policy template codes the firm's
// permissions oblige it to hold, deduplicated, in rule order.
func RequiredTemplates(perms model.PermissionSet) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rule := range RequirementRules {
		if !rule.Applies(perms) {
			continue
		}
		for _, code := range rule.Templates {
			if seen[code] {
				continue
			}
			seen[code] = true
			out = append(out, code)
		}
	}
	return out
}

// ClauseApplies reports whether a clause belongs in a document of the
// given template for a firm with the given permissions: the clause must
// be valid for the template and its permission predicate (if any) must
// match the firm.
func ClauseApplies(clause *model.Clause, templateCode string, perms model.PermissionSet) bool {
	if !clause.AppliesToTemplate(templateCode) {
		return false
	}
	return clause.Permissions.MatchedBy(perms)
}

// FilterClauses returns the subset of the library applicable to the
// firm and template, preserving library order.
func FilterClauses(clauses []model.Clause, templateCode string, perms model.PermissionSet) []model.Clause {
	var out []model.Clause
	for i := range clauses {
		if ClauseApplies(&clauses[i], templateCode, perms) {
			out = append(out, clauses[i])
		}
	}
	return out
}
