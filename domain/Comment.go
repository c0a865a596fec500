package domain

import (
	"github.com/fundwit/go-commons/types"
)

// Comment is a free-text note on an NCR. Comments live outside the state
// machine but share the case's lifecycle.
type Comment struct {
	ID    types.ID `json:"id" gorm:"primary_key" sql:"type:BIGINT UNSIGNED NOT NULL"`
	NcrID types.ID `json:"ncrId" sql:"type:BIGINT UNSIGNED NOT NULL"`

	Content string      `json:"content" sql:"type:TEXT"`
	Type    CommentType `json:"type"`

	CreatorID  types.ID        `json:"creatorId"`
	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
	UpdateTime types.Timestamp `json:"updateTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (r *Comment) TableName() string {
	return "ncr_comments"
}
