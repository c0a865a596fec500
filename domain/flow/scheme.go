package flow

import (
	"ncrtrack/domain"
)

// WorkflowScheme is the read-only description of the whole workflow: the role
// table and the transition table. Clients render navigation and action buttons
// from it instead of hardcoding the graph.
type WorkflowScheme struct {
	Roles       map[domain.Role]RoleConfig        `json:"roles"`
	Transitions map[domain.Stage][]TransitionRule `json:"transitions"`
}

func Scheme() WorkflowScheme {
	roles := make(map[domain.Role]RoleConfig, len(roleConfigs))
	for role, config := range roleConfigs {
		roles[role] = config
	}
	transitions := make(map[domain.Stage][]TransitionRule, len(workflowTransitions))
	for stage := range workflowTransitions {
		transitions[stage] = RulesFor(stage)
	}
	return WorkflowScheme{Roles: roles, Transitions: transitions}
}
