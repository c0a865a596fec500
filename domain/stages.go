package domain

// Stage is a named position of an NCR in the review workflow.
type Stage string

const (
	StageDraft           = Stage("draft")
	StageSubmitted       = Stage("submitted")
	StagePeReview        = Stage("pe_review")
	StageEmReview        = Stage("em_review")
	StagePmReview        = Stage("pm_review")
	StageOmReview        = Stage("om_review")
	StageQaReview        = Stage("qa_review")
	StageMarketingReview = Stage("marketing_review")
	StageRework          = Stage("rework")
	StageApproved        = Stage("approved")
	StageRejected        = Stage("rejected")
)

// Action is a named operation a principal invokes to move an NCR between
// stages (or loop in place).
type Action string

const (
	ActionSaveDraft        = Action("save_draft")
	ActionSubmit           = Action("submit")
	ActionAcceptBatch      = Action("accept_batch")
	ActionPartiallyAccept  = Action("partially_accept")
	ActionRejectBatch      = Action("reject_batch")
	ActionRequestRework    = Action("request_rework")
	ActionApprove          = Action("approve")
	ActionReturn           = Action("return")
	ActionRequestInfo      = Action("request_info")
	ActionMoveToPm         = Action("move_to_pm")
	ActionRequestMarketing = Action("request_marketing")
	ActionSubmitRework     = Action("submit_rework")
	ActionChangeDecision   = Action("change_decision")
)

type BatchDecision string

const (
	BatchDecisionPending         = BatchDecision("pending")
	BatchDecisionAccept          = BatchDecision("accept")
	BatchDecisionPartiallyAccept = BatchDecision("partially_accept")
	BatchDecisionReject          = BatchDecision("reject")
	BatchDecisionRework          = BatchDecision("rework")
)

type FinalStatus string

const (
	FinalStatusInProgress = FinalStatus("in_progress")
	FinalStatusApproved   = FinalStatus("approved")
	FinalStatusRejected   = FinalStatus("rejected")
	FinalStatusClosed     = FinalStatus("closed")
)

type Priority string

const (
	PriorityLow      = Priority("low")
	PriorityMedium   = Priority("medium")
	PriorityHigh     = Priority("high")
	PriorityCritical = Priority("critical")
)

type ReworkResult string

const (
	ReworkResultConformal          = ReworkResult("conformal")
	ReworkResultPartiallyConformal = ReworkResult("partially_conformal")
	ReworkResultNonConformal       = ReworkResult("non_conformal")
)

type CommentType string

const (
	CommentTypeGeneral            = CommentType("general")
	CommentTypeEngineeringFinding = CommentType("engineering_finding")
	CommentTypeRootCause          = CommentType("root_cause")
	CommentTypeApprovalNote       = CommentType("approval_note")
	CommentTypeRejectionReason    = CommentType("rejection_reason")
	CommentTypeInfoRequest        = CommentType("info_request")
)
