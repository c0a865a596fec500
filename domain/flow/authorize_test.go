package flow_test

import (
	"ncrtrack/domain"
	"ncrtrack/domain/flow"
	"ncrtrack/session"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Authorize", func() {
	Describe("CanAct", func() {
		It("should always let admin act", func() {
			identity := session.Identity{ID: 1, Role: domain.RoleAdmin}
			ncr := domain.NCR{ID: 100, WorkflowStage: domain.StagePeReview,
				AssignedRole: domain.RoleProcessEngineer, AssignedTo: 999}
			Expect(flow.CanAct(identity, &ncr)).To(BeTrue())
		})

		It("should let the pinned assignee act regardless of role", func() {
			identity := session.Identity{ID: 7, Role: domain.RoleMarketingManager}
			ncr := domain.NCR{ID: 100, WorkflowStage: domain.StageDraft,
				AssignedRole: domain.RoleStationSupervisor, AssignedTo: 7}
			Expect(flow.CanAct(identity, &ncr)).To(BeTrue())
		})

		It("should let any member of the assigned role act when nobody is pinned", func() {
			identity := session.Identity{ID: 7, Role: domain.RoleProcessEngineer}
			ncr := domain.NCR{ID: 100, WorkflowStage: domain.StagePeReview,
				AssignedRole: domain.RoleProcessEngineer}
			Expect(flow.CanAct(identity, &ncr)).To(BeTrue())
		})

		It("should refuse everyone else", func() {
			ncr := domain.NCR{ID: 100, WorkflowStage: domain.StagePeReview,
				AssignedRole: domain.RoleProcessEngineer, AssignedTo: 8}

			Expect(flow.CanAct(session.Identity{ID: 7, Role: domain.RoleQaManager}, &ncr)).To(BeFalse())
			// the role pool keeps working even when one member picked the case up
			Expect(flow.CanAct(session.Identity{ID: 7, Role: domain.RoleProcessEngineer}, &ncr)).To(BeTrue())
		})
	})

	Describe("AvailableActions", func() {
		It("should be empty for principals who cannot act", func() {
			identity := session.Identity{ID: 7, Role: domain.RoleQaManager}
			ncr := domain.NCR{ID: 100, WorkflowStage: domain.StagePeReview,
				AssignedRole: domain.RoleProcessEngineer}
			Expect(flow.AvailableActions(identity, &ncr)).To(BeEmpty())
		})

		It("should give admin every rule of the stage", func() {
			identity := session.Identity{ID: 1, Role: domain.RoleAdmin}
			ncr := domain.NCR{ID: 100, WorkflowStage: domain.StagePeReview,
				AssignedRole: domain.RoleProcessEngineer}
			Expect(flow.AvailableActions(identity, &ncr)).To(HaveLen(6))
		})

		It("should intersect stage rules with the role allow-list", func() {
			identity := session.Identity{ID: 7, Role: domain.RoleProcessEngineer}
			ncr := domain.NCR{ID: 100, WorkflowStage: domain.StagePeReview,
				AssignedRole: domain.RoleProcessEngineer}

			actions := []domain.Action{}
			for _, rule := range flow.AvailableActions(identity, &ncr) {
				actions = append(actions, rule.Action)
			}
			Expect(actions).To(ConsistOf(
				domain.ActionAcceptBatch, domain.ActionPartiallyAccept, domain.ActionRejectBatch,
				domain.ActionRequestRework, domain.ActionMoveToPm, domain.ActionRequestInfo))
		})

		It("should be empty on terminal stages even for admin", func() {
			identity := session.Identity{ID: 1, Role: domain.RoleAdmin}
			ncr := domain.NCR{ID: 100, WorkflowStage: domain.StageApproved}
			Expect(flow.AvailableActions(identity, &ncr)).To(BeEmpty())
		})
	})
})
