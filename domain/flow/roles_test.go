package flow_test

import (
	"ncrtrack/domain"
	"ncrtrack/domain/flow"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("RoleConfigs", func() {
	Describe("RoleAllows", func() {
		It("should allow admin every action without listing any", func() {
			Expect(flow.AllowedActions(domain.RoleAdmin)).To(BeEmpty())
			for _, action := range []domain.Action{
				domain.ActionSubmit, domain.ActionApprove, domain.ActionRequestRework,
				domain.ActionChangeDecision, domain.Action("made_up_action"),
			} {
				Expect(flow.RoleAllows(domain.RoleAdmin, action)).To(BeTrue())
			}
		})

		It("should limit the station supervisor to drafting actions", func() {
			Expect(flow.RoleAllows(domain.RoleStationSupervisor, domain.ActionSubmit)).To(BeTrue())
			Expect(flow.RoleAllows(domain.RoleStationSupervisor, domain.ActionSubmitRework)).To(BeTrue())
			Expect(flow.RoleAllows(domain.RoleStationSupervisor, domain.ActionApprove)).To(BeFalse())
			Expect(flow.RoleAllows(domain.RoleStationSupervisor, domain.ActionAcceptBatch)).To(BeFalse())
		})

		It("should keep production control read-only", func() {
			Expect(flow.AllowedActions(domain.RoleProductionControl)).To(BeEmpty())
			Expect(flow.RoleAllows(domain.RoleProductionControl, domain.ActionApprove)).To(BeFalse())
		})

		It("should allow nothing for unknown roles", func() {
			Expect(flow.RoleAllows(domain.Role("intern"), domain.ActionSubmit)).To(BeFalse())
			Expect(flow.AllowedActions(domain.Role("intern"))).To(BeEmpty())
		})

		It("should let the engineering manager change decisions but not make the initial one", func() {
			Expect(flow.RoleAllows(domain.RoleEngineeringManager, domain.ActionChangeDecision)).To(BeTrue())
			Expect(flow.RoleAllows(domain.RoleEngineeringManager, domain.ActionAcceptBatch)).To(BeFalse())
		})

		It("should let the product manager decide when the process engineer has not", func() {
			for _, action := range []domain.Action{
				domain.ActionAcceptBatch, domain.ActionPartiallyAccept,
				domain.ActionRejectBatch, domain.ActionRequestRework,
			} {
				Expect(flow.RoleAllows(domain.RoleProductManager, action)).To(BeTrue())
			}
		})
	})

	Describe("ConfigOf", func() {
		It("should return an empty config for unknown roles", func() {
			config := flow.ConfigOf(domain.Role("intern"))
			Expect(config.AllowedActions).To(BeEmpty())
			Expect(config.AllowedStages).To(BeEmpty())
			Expect(config.Label).To(BeEmpty())
		})

		It("should describe every known role", func() {
			for _, role := range domain.AllRoles {
				Expect(flow.ConfigOf(role).Label).ToNot(BeEmpty(), "role %s", role)
			}
		})
	})
})
