package comment

import (
	"ncrtrack/domain"
	"ncrtrack/idgen"
	"ncrtrack/persistence"
	"ncrtrack/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var (
	commentIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateCommentFunc = CreateComment
	ListCommentsFunc  = ListComments
)

type CommentCreation struct {
	NcrID   types.ID           `json:"ncrId" binding:"required"`
	Content string             `json:"content" binding:"required"`
	Type    domain.CommentType `json:"type" binding:"omitempty,oneof=general engineering_finding root_cause approval_note rejection_reason info_request"`
}

func CreateComment(req CommentCreation, sec *session.Session) (*domain.Comment, error) {
	commentType := req.Type
	if commentType == "" {
		commentType = domain.CommentTypeGeneral
	}

	var r *domain.Comment
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	txErr := db.Transaction(func(tx *gorm.DB) error {
		// the comment must hang off an existing case
		ncr := domain.NCR{ID: req.NcrID}
		if err := tx.Where(&ncr).First(&ncr).Error; err != nil {
			return err
		}

		now := types.CurrentTimestamp()
		c := domain.Comment{
			ID:         idgen.NextID(commentIdWorker),
			NcrID:      req.NcrID,
			Content:    req.Content,
			Type:       commentType,
			CreatorID:  sec.Identity.ID,
			CreateTime: now,
			UpdateTime: now,
		}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		r = &c
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return r, nil
}

// ListComments returns the comments of an NCR, latest first.
func ListComments(ncrID types.ID, sec *session.Session) ([]domain.Comment, error) {
	var comments []domain.Comment
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	if err := db.Where(&domain.Comment{NcrID: ncrID}).
		Order("create_time DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
