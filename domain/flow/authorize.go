package flow

import (
	"ncrtrack/domain"
	"ncrtrack/session"
)

// CanAct decides whether a principal may touch an NCR at all: admin always,
// the pinned assignee, or any member of the assigned role. Whether a specific
// action is legal is layered on top (see ExecuteAction and AvailableActions).
func CanAct(identity session.Identity, ncr *domain.NCR) bool {
	if identity.Role == domain.RoleAdmin {
		return true
	}
	if !ncr.AssignedTo.IsZero() && ncr.AssignedTo == identity.ID {
		return true
	}
	if ncr.AssignedRole != "" && ncr.AssignedRole == identity.Role {
		return true
	}
	return false
}

// AvailableActions intersects the current stage's rules with the principal's
// allowed actions. Admin sees every rule of the stage.
func AvailableActions(identity session.Identity, ncr *domain.NCR) []TransitionRule {
	if !CanAct(identity, ncr) {
		return []TransitionRule{}
	}

	rules := RulesFor(ncr.WorkflowStage)
	if identity.Role == domain.RoleAdmin {
		return rules
	}

	r := []TransitionRule{}
	for _, rule := range rules {
		if RoleAllows(identity.Role, rule.Action) {
			r = append(r, rule)
		}
	}
	return r
}
