package flow_test

import (
	"ncrtrack/domain"
	"ncrtrack/domain/flow"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var allStages = []domain.Stage{
	domain.StageDraft, domain.StageSubmitted, domain.StagePeReview, domain.StageEmReview,
	domain.StagePmReview, domain.StageOmReview, domain.StageQaReview, domain.StageMarketingReview,
	domain.StageRework, domain.StageApproved, domain.StageRejected,
}

var _ = Describe("TransitionTable", func() {
	Describe("RulesFor", func() {
		It("should keep the stage graph closed", func() {
			for _, stage := range allStages {
				for _, rule := range flow.RulesFor(stage) {
					Expect(allStages).To(ContainElement(rule.NextStage),
						"stage %s action %s leads outside the graph", stage, rule.Action)
					Expect(rule.NextRole).ToNot(BeEmpty())
				}
			}
		})

		It("should yield nothing for terminal stages", func() {
			Expect(flow.RulesFor(domain.StageApproved)).To(BeEmpty())
			Expect(flow.RulesFor(domain.StageRejected)).To(BeEmpty())
		})

		It("should yield nothing for unknown stages", func() {
			Expect(flow.RulesFor(domain.Stage("no_such_stage"))).To(BeEmpty())
		})

		It("should return a copy which callers may mutate freely", func() {
			rules := flow.RulesFor(domain.StageDraft)
			Expect(rules).To(HaveLen(1))
			rules[0].NextStage = domain.StageRejected
			Expect(flow.RulesFor(domain.StageDraft)[0].NextStage).To(Equal(domain.StageSubmitted))
		})

		It("should expose the single submission path out of draft", func() {
			rules := flow.RulesFor(domain.StageDraft)
			Expect(rules).To(HaveLen(1))
			Expect(rules[0].Action).To(Equal(domain.ActionSubmit))
			Expect(rules[0].NextStage).To(Equal(domain.StageSubmitted))
			Expect(rules[0].NextRole).To(Equal(domain.RoleProductionControl))
		})

		It("should route every pe_review decision to the engineering manager", func() {
			for _, action := range []domain.Action{
				domain.ActionAcceptBatch, domain.ActionPartiallyAccept, domain.ActionRejectBatch,
			} {
				rule, found := flow.FindRule(domain.StagePeReview, action)
				Expect(found).To(BeTrue())
				Expect(rule.NextStage).To(Equal(domain.StageEmReview))
				Expect(rule.NextRole).To(Equal(domain.RoleEngineeringManager))
				Expect(rule.RequiresDecision).To(BeTrue())
			}
		})

		It("should loop request_info in place in every review stage", func() {
			for _, stage := range []domain.Stage{
				domain.StagePeReview, domain.StageEmReview, domain.StagePmReview,
				domain.StageOmReview, domain.StageQaReview, domain.StageMarketingReview,
			} {
				rule, found := flow.FindRule(stage, domain.ActionRequestInfo)
				Expect(found).To(BeTrue())
				Expect(rule.NextStage).To(Equal(stage))
				Expect(rule.RequiresComment).To(BeTrue())
			}
		})

		It("should require a comment on every rework request and return", func() {
			for _, stage := range allStages {
				for _, rule := range flow.RulesFor(stage) {
					if rule.Action == domain.ActionRequestRework || rule.Action == domain.ActionReturn {
						Expect(rule.RequiresComment).To(BeTrue(),
							"stage %s action %s must require a comment", stage, rule.Action)
					}
				}
			}
		})

		It("should end the happy path at approved via qa_review", func() {
			rule, found := flow.FindRule(domain.StageQaReview, domain.ActionApprove)
			Expect(found).To(BeTrue())
			Expect(rule.NextStage).To(Equal(domain.StageApproved))
			Expect(rule.NextRole).To(Equal(domain.RoleProductionControl))
		})

		It("should send rework submissions back to the process engineer", func() {
			rules := flow.RulesFor(domain.StageRework)
			Expect(rules).To(HaveLen(1))
			Expect(rules[0].Action).To(Equal(domain.ActionSubmitRework))
			Expect(rules[0].NextStage).To(Equal(domain.StagePeReview))
			Expect(rules[0].NextRole).To(Equal(domain.RoleProcessEngineer))
		})
	})

	Describe("FindRule", func() {
		It("should locate a rule by stage and action", func() {
			rule, found := flow.FindRule(domain.StageEmReview, domain.ActionApprove)
			Expect(found).To(BeTrue())
			Expect(rule.NextStage).To(Equal(domain.StageOmReview))
		})

		It("should not find actions outside the stage", func() {
			_, found := flow.FindRule(domain.StageDraft, domain.ActionApprove)
			Expect(found).To(BeFalse())
			_, found = flow.FindRule(domain.StageApproved, domain.ActionSubmit)
			Expect(found).To(BeFalse())
			_, found = flow.FindRule(domain.Stage("no_such_stage"), domain.ActionSubmit)
			Expect(found).To(BeFalse())
		})
	})

	Describe("IsTerminal", func() {
		It("should mark exactly approved and rejected as terminal", func() {
			for _, stage := range allStages {
				terminal := stage == domain.StageApproved || stage == domain.StageRejected
				Expect(flow.IsTerminal(stage)).To(Equal(terminal), "stage %s", stage)
			}
		})

		It("should not mark unknown stages terminal", func() {
			Expect(flow.IsTerminal(domain.Stage("no_such_stage"))).To(BeFalse())
		})
	})
})
