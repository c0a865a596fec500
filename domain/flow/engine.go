package flow

import (
	"strings"

	"ncrtrack/bizerror"
	"ncrtrack/domain"
	"ncrtrack/domain/namespace"
	"ncrtrack/event"
	"ncrtrack/idgen"
	"ncrtrack/persistence"
	"ncrtrack/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var (
	transitionIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	ExecuteActionFunc    = ExecuteAction
	QueryActionsFunc     = QueryActions
	QueryTransitionsFunc = QueryTransitions
)

// ActionExtra carries the optional stage-specific fields a caller may supply
// alongside an action. Absent values leave the stored fields untouched.
type ActionExtra struct {
	BatchDecision       domain.BatchDecision `json:"batchDecision" binding:"omitempty,oneof=pending accept partially_accept reject rework"`
	EngineeringFindings string               `json:"engineeringFindings"`
	RootCauseAnalysis   string               `json:"rootCauseAnalysis"`
	ReworkResult        domain.ReworkResult  `json:"reworkResult" binding:"omitempty,oneof=conformal partially_conformal non_conformal"`
	ReworkNotes         string               `json:"reworkNotes"`
}

type ActionRequest struct {
	Action  domain.Action `json:"action" binding:"required"`
	Comment string        `json:"comment"`

	ActionExtra
}

// ExecuteAction runs one workflow action against an NCR. The case update, the
// transition record and the event are committed in one transaction; a failure
// anywhere leaves the case exactly as it was and appends nothing.
func ExecuteAction(ncrID types.ID, req *ActionRequest, sec *session.Session) (*domain.NCR, error) {
	var updated domain.NCR
	var ev *event.EventRecord

	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	err := db.Transaction(func(tx *gorm.DB) error {
		ncr := domain.NCR{ID: ncrID}
		if err := tx.Where(&domain.NCR{ID: ncrID}).First(&ncr).Error; err != nil {
			return err
		}

		rule, found := FindRule(ncr.WorkflowStage, req.Action)
		if !found {
			return bizerror.ErrInvalidAction
		}
		if !CanAct(sec.Identity, &ncr) {
			return bizerror.ErrForbidden
		}
		// the UI pre-filters actions per role, but a stale or forged request
		// must not slip through
		if !RoleAllows(sec.Identity.Role, req.Action) {
			return bizerror.ErrForbidden
		}
		if rule.RequiresComment && strings.TrimSpace(req.Comment) == "" {
			return bizerror.ErrCommentRequired
		}

		fromStage := ncr.WorkflowStage
		now := types.CurrentTimestamp()
		changes := computeChanges(&ncr, rule, req)
		changes["update_time"] = now

		if req.Action == domain.ActionSubmit && ncr.Number == "" {
			number, err := namespace.NextNCRNumberFunc(tx)
			if err != nil {
				return err
			}
			changes["number"] = number
		}

		// conditional update keyed on the current stage: the loser of a
		// concurrent action race is told apart from a plain failure
		query := tx.Model(&domain.NCR{}).Where(&domain.NCR{ID: ncrID, WorkflowStage: fromStage}).Update(changes)
		if err := query.Error; err != nil {
			return err
		}
		if query.RowsAffected != 1 {
			return bizerror.ErrStaleCase
		}

		record := domain.TransitionRecord{
			ID:         idgen.NextID(transitionIdWorker),
			NcrID:      ncrID,
			FromStage:  fromStage,
			ToStage:    rule.NextStage,
			NextRole:   rule.NextRole,
			Action:     req.Action,
			Decision:   recordedDecision(req),
			Comment:    req.Comment,
			CreatorID:  sec.Identity.ID,
			CreateTime: now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		if err := tx.Where(&domain.NCR{ID: ncrID}).First(&updated).Error; err != nil {
			return err
		}

		var err error
		ev, err = event.CreateEvent("ncr", ncrID, updated.Title, event.EventCategoryTransited, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return &updated, nil
}

// computeChanges builds the mutation set of one transition. Pure.
func computeChanges(ncr *domain.NCR, rule TransitionRule, req *ActionRequest) map[string]interface{} {
	changes := map[string]interface{}{
		"workflow_stage": rule.NextStage,
		"assigned_role":  rule.NextRole,
		// responsibility returns to the role pool, even for rework
		"assigned_to": types.ID(0),
	}

	if decision, ok := batchDecisionOf(req.Action); ok {
		changes["batch_decision"] = decision
	}

	if req.Action == domain.ActionApprove {
		// the flag is keyed on the stage the action was taken in, not the
		// stage it leads to
		switch ncr.WorkflowStage {
		case domain.StagePeReview:
			changes["pe_approved"] = true
		case domain.StageEmReview:
			changes["em_approved"] = true
		case domain.StagePmReview:
			changes["pm_approved"] = true
		case domain.StageOmReview:
			changes["om_approved"] = true
		case domain.StageQaReview:
			changes["qa_approved"] = true
			if rule.NextStage == domain.StageApproved {
				changes["final_status"] = domain.FinalStatusApproved
			}
		case domain.StageMarketingReview:
			changes["marketing_approved"] = true
		}
	}

	if req.EngineeringFindings != "" {
		changes["engineering_findings"] = req.EngineeringFindings
	}
	if req.RootCauseAnalysis != "" {
		changes["root_cause_analysis"] = req.RootCauseAnalysis
	}
	if req.ReworkResult != "" {
		changes["rework_result"] = req.ReworkResult
	}
	if req.ReworkNotes != "" {
		changes["rework_notes"] = req.ReworkNotes
	}

	return changes
}

func batchDecisionOf(action domain.Action) (domain.BatchDecision, bool) {
	switch action {
	case domain.ActionAcceptBatch:
		return domain.BatchDecisionAccept, true
	case domain.ActionPartiallyAccept:
		return domain.BatchDecisionPartiallyAccept, true
	case domain.ActionRejectBatch:
		return domain.BatchDecisionReject, true
	case domain.ActionRequestRework:
		return domain.BatchDecisionRework, true
	}
	return "", false
}

// recordedDecision prefers the caller-supplied decision and falls back to the
// one the action itself implies, so the audit trail never loses it.
func recordedDecision(req *ActionRequest) domain.BatchDecision {
	if req.BatchDecision != "" {
		return req.BatchDecision
	}
	if decision, ok := batchDecisionOf(req.Action); ok {
		return decision
	}
	return ""
}

// QueryActions loads an NCR and returns the actions the caller may take on it.
func QueryActions(ncrID types.ID, sec *session.Session) ([]TransitionRule, error) {
	ncr := domain.NCR{ID: ncrID}
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	if err := db.Where(&domain.NCR{ID: ncrID}).First(&ncr).Error; err != nil {
		return nil, err
	}
	return AvailableActions(sec.Identity, &ncr), nil
}
