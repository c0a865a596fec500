package domain

import (
	"github.com/fundwit/go-commons/types"
)

// NCR is the unit under workflow control.
type NCR struct {
	ID     types.ID `json:"id" gorm:"primary_key" sql:"type:BIGINT UNSIGNED NOT NULL"`
	Number string   `json:"number"` // empty until first submission

	Title       string `json:"title"`
	Description string `json:"description" sql:"type:TEXT"`

	WorkflowStage Stage    `json:"workflowStage"`
	AssignedRole  Role     `json:"assignedRole"`
	AssignedTo    types.ID `json:"assignedTo"` // zero when responsibility sits with the role pool

	BatchDecision BatchDecision `json:"batchDecision"`

	EngineeringFindings string       `json:"engineeringFindings" sql:"type:TEXT"`
	RootCauseAnalysis   string       `json:"rootCauseAnalysis" sql:"type:TEXT"`
	ReworkResult        ReworkResult `json:"reworkResult"`
	ReworkNotes         string       `json:"reworkNotes" sql:"type:TEXT"`

	PeApproved        bool `json:"peApproved"`
	EmApproved        bool `json:"emApproved"`
	PmApproved        bool `json:"pmApproved"`
	OmApproved        bool `json:"omApproved"`
	QaApproved        bool `json:"qaApproved"`
	MarketingApproved bool `json:"marketingApproved"`

	FinalStatus FinalStatus `json:"finalStatus"`
	Priority    Priority    `json:"priority"`

	CreatorID  types.ID        `json:"creatorId"`
	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
	UpdateTime types.Timestamp `json:"updateTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (r *NCR) TableName() string {
	return "ncrs"
}

type AssignmentKind string

const (
	AssignedToNobody = AssignmentKind("unassigned")
	AssignedToPerson = AssignmentKind("person")
	AssignedToRole   = AssignmentKind("role")
)

// Assignment is the discriminated view over the assigned_to/assigned_role
// pair: a pinned individual wins over the role pool.
type Assignment struct {
	Kind   AssignmentKind `json:"kind"`
	Person types.ID       `json:"person,omitempty"`
	Role   Role           `json:"role,omitempty"`
}

func (r *NCR) Assignment() Assignment {
	if !r.AssignedTo.IsZero() {
		return Assignment{Kind: AssignedToPerson, Person: r.AssignedTo}
	}
	if r.AssignedRole != "" {
		return Assignment{Kind: AssignedToRole, Role: r.AssignedRole}
	}
	return Assignment{Kind: AssignedToNobody}
}

type NCRQuery struct {
	Stage         Stage         `form:"stage"`
	AssignedRole  Role          `form:"assignedRole"`
	AssignedTo    types.ID      `form:"assignedTo"`
	CreatorID     types.ID      `form:"creatorId"`
	Priority      Priority      `form:"priority"`
	FinalStatus   FinalStatus   `form:"finalStatus"`
	BatchDecision BatchDecision `form:"batchDecision"`
}

type NCRCreation struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority" binding:"omitempty,oneof=low medium high critical"`
}

type NCRUpdating struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority" binding:"omitempty,oneof=low medium high critical"`
}
