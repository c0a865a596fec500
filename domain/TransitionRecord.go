package domain

import (
	"github.com/fundwit/go-commons/types"
)

// TransitionRecord is the immutable audit entry for one executed workflow
// action. Records are appended by the engine and never mutated or deleted.
type TransitionRecord struct {
	ID    types.ID `json:"id" gorm:"primary_key" sql:"type:BIGINT UNSIGNED NOT NULL"`
	NcrID types.ID `json:"ncrId" sql:"type:BIGINT UNSIGNED NOT NULL"`

	FromStage Stage `json:"fromStage"` // empty only for the creation event
	ToStage   Stage `json:"toStage"`
	NextRole  Role  `json:"nextRole"`

	Action   Action        `json:"action"`
	Decision BatchDecision `json:"decision"`
	Comment  string        `json:"comment" sql:"type:TEXT"`

	CreatorID  types.ID        `json:"creatorId"` // zero for system generated transitions
	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (r *TransitionRecord) TableName() string {
	return "transition_records"
}
