package flow

import (
	"ncrtrack/domain"
)

// TransitionRule is one entry of the static (stage, action) mapping. Label is
// display only; the engine ignores it.
type TransitionRule struct {
	Action    domain.Action `json:"action"`
	Label     string        `json:"label"`
	NextStage domain.Stage  `json:"nextStage"`
	NextRole  domain.Role   `json:"nextRole"`

	RequiresComment  bool `json:"requiresComment,omitempty"`
	RequiresDecision bool `json:"requiresDecision,omitempty"`
}

// workflowTransitions is the closed stage graph. approved and rejected are
// terminal sinks with no outgoing rules; every NextStage value is itself a
// key of this map.
var workflowTransitions = map[domain.Stage][]TransitionRule{
	domain.StageDraft: {
		{Action: domain.ActionSubmit, Label: "Submit NCR", NextStage: domain.StageSubmitted, NextRole: domain.RoleProductionControl},
	},
	domain.StageSubmitted: {
		{Action: domain.ActionApprove, Label: "Send to Process Engineer", NextStage: domain.StagePeReview, NextRole: domain.RoleProcessEngineer},
	},
	domain.StagePeReview: {
		{Action: domain.ActionAcceptBatch, Label: "Accept Batch", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager, RequiresDecision: true},
		{Action: domain.ActionPartiallyAccept, Label: "Partially Accept", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager, RequiresDecision: true},
		{Action: domain.ActionRejectBatch, Label: "Reject Batch", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager, RequiresDecision: true},
		{Action: domain.ActionRequestRework, Label: "Request Rework", NextStage: domain.StageRework, NextRole: domain.RoleStationSupervisor, RequiresComment: true},
		{Action: domain.ActionMoveToPm, Label: "Move to Product Manager", NextStage: domain.StagePmReview, NextRole: domain.RoleProductManager},
		{Action: domain.ActionRequestInfo, Label: "Request Additional Info", NextStage: domain.StagePeReview, NextRole: domain.RoleProcessEngineer, RequiresComment: true},
	},
	domain.StageEmReview: {
		{Action: domain.ActionApprove, Label: "Approve", NextStage: domain.StageOmReview, NextRole: domain.RoleOperationsManager},
		{Action: domain.ActionReturn, Label: "Return to Process Engineer", NextStage: domain.StagePeReview, NextRole: domain.RoleProcessEngineer, RequiresComment: true},
		{Action: domain.ActionChangeDecision, Label: "Change Decision", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager, RequiresDecision: true},
		{Action: domain.ActionRequestInfo, Label: "Request Additional Info", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager, RequiresComment: true},
	},
	domain.StagePmReview: {
		{Action: domain.ActionApprove, Label: "Approve", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager},
		{Action: domain.ActionReturn, Label: "Return to Process Engineer", NextStage: domain.StagePeReview, NextRole: domain.RoleProcessEngineer, RequiresComment: true},
		{Action: domain.ActionAcceptBatch, Label: "Accept Batch", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager, RequiresDecision: true},
		{Action: domain.ActionPartiallyAccept, Label: "Partially Accept", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager, RequiresDecision: true},
		{Action: domain.ActionRejectBatch, Label: "Reject Batch", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager, RequiresDecision: true},
		{Action: domain.ActionRequestRework, Label: "Request Rework", NextStage: domain.StageRework, NextRole: domain.RoleStationSupervisor, RequiresComment: true},
		{Action: domain.ActionRequestInfo, Label: "Request Additional Info", NextStage: domain.StagePmReview, NextRole: domain.RoleProductManager, RequiresComment: true},
	},
	domain.StageOmReview: {
		{Action: domain.ActionApprove, Label: "Approve", NextStage: domain.StageQaReview, NextRole: domain.RoleQaManager},
		{Action: domain.ActionReturn, Label: "Return to Engineering Manager", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager, RequiresComment: true},
		{Action: domain.ActionRequestInfo, Label: "Request Additional Info", NextStage: domain.StageOmReview, NextRole: domain.RoleOperationsManager, RequiresComment: true},
	},
	domain.StageQaReview: {
		{Action: domain.ActionApprove, Label: "Final Approve", NextStage: domain.StageApproved, NextRole: domain.RoleProductionControl},
		{Action: domain.ActionReturn, Label: "Return to Engineering Manager", NextStage: domain.StageEmReview, NextRole: domain.RoleEngineeringManager, RequiresComment: true},
		{Action: domain.ActionRequestMarketing, Label: "Request Marketing Approval", NextStage: domain.StageMarketingReview, NextRole: domain.RoleMarketingManager},
		{Action: domain.ActionRequestInfo, Label: "Request Additional Info", NextStage: domain.StageQaReview, NextRole: domain.RoleQaManager, RequiresComment: true},
	},
	domain.StageMarketingReview: {
		{Action: domain.ActionApprove, Label: "Approve", NextStage: domain.StageQaReview, NextRole: domain.RoleQaManager},
		{Action: domain.ActionReturn, Label: "Return to QA Manager", NextStage: domain.StageQaReview, NextRole: domain.RoleQaManager, RequiresComment: true},
		{Action: domain.ActionRequestInfo, Label: "Request Additional Info", NextStage: domain.StageMarketingReview, NextRole: domain.RoleMarketingManager, RequiresComment: true},
	},
	domain.StageRework: {
		{Action: domain.ActionSubmitRework, Label: "Submit After Rework", NextStage: domain.StagePeReview, NextRole: domain.RoleProcessEngineer},
	},
	domain.StageApproved: {},
	domain.StageRejected: {},
}

// RulesFor returns the ordered transition rules for a stage. Terminal stages
// and unknown stage values both yield an empty slice, never an error.
func RulesFor(stage domain.Stage) []TransitionRule {
	rules := workflowTransitions[stage]
	r := make([]TransitionRule, len(rules))
	copy(r, rules)
	return r
}

// FindRule locates the rule for an action within a stage.
func FindRule(stage domain.Stage, action domain.Action) (TransitionRule, bool) {
	for _, rule := range workflowTransitions[stage] {
		if rule.Action == action {
			return rule, true
		}
	}
	return TransitionRule{}, false
}

// IsTerminal reports whether a stage has no outgoing rules while still being
// part of the graph.
func IsTerminal(stage domain.Stage) bool {
	rules, found := workflowTransitions[stage]
	return found && len(rules) == 0
}
