package flow

import (
	"ncrtrack/domain"
)

// RoleConfig describes what a workflow role is allowed to do. AllowedStages
// is informational (used by clients for navigation); authorization decisions
// are made against AllowedActions only.
type RoleConfig struct {
	Label          string          `json:"label"`
	Description    string          `json:"description"`
	AllowedStages  []domain.Stage  `json:"allowedStages"`
	AllowedActions []domain.Action `json:"allowedActions"`
}

// roleConfigs is static. The admin role is intentionally absent from the
// allow-lists below: admin bypasses the action check entirely (see RoleAllows)
// so the table cannot drift when actions are added.
var roleConfigs = map[domain.Role]RoleConfig{
	domain.RoleStationSupervisor: {
		Label:          "Station Supervisor",
		Description:    "Creates and submits NCRs",
		AllowedStages:  []domain.Stage{domain.StageDraft, domain.StageRework},
		AllowedActions: []domain.Action{domain.ActionSaveDraft, domain.ActionSubmit, domain.ActionSubmitRework},
	},
	domain.RoleProcessEngineer: {
		Label:         "Process Engineer",
		Description:   "Reviews NCRs, adds findings, makes batch decisions",
		AllowedStages: []domain.Stage{domain.StagePeReview},
		AllowedActions: []domain.Action{
			domain.ActionAcceptBatch, domain.ActionPartiallyAccept, domain.ActionRejectBatch,
			domain.ActionRequestRework, domain.ActionRequestInfo, domain.ActionMoveToPm,
		},
	},
	domain.RoleEngineeringManager: {
		Label:          "Engineering Manager",
		Description:    "Approves PE decisions, can change decisions",
		AllowedStages:  []domain.Stage{domain.StageEmReview},
		AllowedActions: []domain.Action{domain.ActionApprove, domain.ActionReturn, domain.ActionRequestInfo, domain.ActionChangeDecision},
	},
	domain.RoleProductManager: {
		Label:         "Product Manager",
		Description:   "Reviews NCRs, can make batch decisions if PE hasn't",
		AllowedStages: []domain.Stage{domain.StagePmReview},
		AllowedActions: []domain.Action{
			domain.ActionApprove, domain.ActionReturn, domain.ActionRequestInfo,
			domain.ActionAcceptBatch, domain.ActionPartiallyAccept, domain.ActionRejectBatch,
			domain.ActionRequestRework,
		},
	},
	domain.RoleOperationsManager: {
		Label:          "Operations Manager",
		Description:    "Approves EM decisions",
		AllowedStages:  []domain.Stage{domain.StageOmReview},
		AllowedActions: []domain.Action{domain.ActionApprove, domain.ActionReturn, domain.ActionRequestInfo},
	},
	domain.RoleQaManager: {
		Label:          "QA Manager",
		Description:    "Final approval, can request Marketing review",
		AllowedStages:  []domain.Stage{domain.StageQaReview},
		AllowedActions: []domain.Action{domain.ActionApprove, domain.ActionReturn, domain.ActionRequestInfo, domain.ActionRequestMarketing},
	},
	domain.RoleMarketingManager: {
		Label:          "Marketing Manager",
		Description:    "Reviews when requested by QA",
		AllowedStages:  []domain.Stage{domain.StageMarketingReview},
		AllowedActions: []domain.Action{domain.ActionApprove, domain.ActionReturn, domain.ActionRequestInfo},
	},
	domain.RoleProductionControl: {
		Label:          "Production Control",
		Description:    "Receives notifications, monitors workflow",
		AllowedStages:  []domain.Stage{},
		AllowedActions: []domain.Action{},
	},
	domain.RoleAdmin: {
		Label:          "Administrator",
		Description:    "Full system access",
		AllowedStages:  []domain.Stage{},
		AllowedActions: []domain.Action{},
	},
}

// ConfigOf returns the static configuration for a role. Unknown roles yield
// an empty config, which allows nothing.
func ConfigOf(role domain.Role) RoleConfig {
	return roleConfigs[role]
}

// AllowedActions returns the fixed action set of a role.
func AllowedActions(role domain.Role) []domain.Action {
	return roleConfigs[role].AllowedActions
}

// RoleAllows reports whether a role may invoke an action. Admin is allowed
// every action regardless of the table contents.
func RoleAllows(role domain.Role, action domain.Action) bool {
	if role == domain.RoleAdmin {
		return true
	}
	for _, a := range roleConfigs[role].AllowedActions {
		if a == action {
			return true
		}
	}
	return false
}
