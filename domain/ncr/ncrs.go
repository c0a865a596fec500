package ncr

import (
	"ncrtrack/bizerror"
	"ncrtrack/domain"
	"ncrtrack/event"
	"ncrtrack/idgen"
	"ncrtrack/persistence"
	"ncrtrack/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var (
	ncrIdWorker            = sonyflake.NewSonyflake(sonyflake.Settings{})
	creationRecordIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateNCRFunc   = CreateNCR
	DetailNCRFunc   = DetailNCR
	QueryNCRsFunc   = QueryNCRs
	QueryMyNCRsFunc = QueryMyNCRs
	UpdateNCRFunc   = UpdateNCR
	DeleteNCRFunc   = DeleteNCR
)

// CanCreate limits NCR creation to the shop floor and administrators.
func CanCreate(role domain.Role) bool {
	return role == domain.RoleStationSupervisor || role == domain.RoleAdmin
}

// CreateNCR opens a new case in draft, pinned to its creator, and logs the
// creation event into the audit trail.
func CreateNCR(c *domain.NCRCreation, sec *session.Session) (*domain.NCR, error) {
	if !CanCreate(sec.Identity.Role) {
		return nil, bizerror.ErrForbidden
	}

	now := types.CurrentTimestamp()
	priority := c.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	record := &domain.NCR{
		ID:          idgen.NextID(ncrIdWorker),
		Title:       c.Title,
		Description: c.Description,
		Priority:    priority,

		WorkflowStage: domain.StageDraft,
		AssignedRole:  domain.RoleStationSupervisor,
		AssignedTo:    sec.Identity.ID,

		BatchDecision: domain.BatchDecisionPending,
		FinalStatus:   domain.FinalStatusInProgress,

		CreatorID:  sec.Identity.ID,
		CreateTime: now,
		UpdateTime: now,
	}

	var ev *event.EventRecord
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		creation := domain.TransitionRecord{
			ID:         idgen.NextID(creationRecordIdWorker),
			NcrID:      record.ID,
			FromStage:  "",
			ToStage:    domain.StageDraft,
			NextRole:   domain.RoleStationSupervisor,
			Action:     domain.ActionSaveDraft,
			Comment:    "NCR created",
			CreatorID:  sec.Identity.ID,
			CreateTime: now,
		}
		if err := tx.Create(&creation).Error; err != nil {
			return err
		}

		var err error
		ev, err = event.CreateEvent("ncr", record.ID, record.Title, event.EventCategoryCreated, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return record, nil
}

func DetailNCR(id types.ID, sec *session.Session) (*domain.NCR, error) {
	record := domain.NCR{}
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	if err := db.Where(&domain.NCR{ID: id}).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func QueryNCRs(query *domain.NCRQuery, sec *session.Session) (*[]domain.NCR, error) {
	var records []domain.NCR
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)

	q := db.Model(&domain.NCR{})
	if query.Stage != "" {
		q = q.Where("workflow_stage = ?", query.Stage)
	}
	if query.AssignedRole != "" {
		q = q.Where("assigned_role = ?", query.AssignedRole)
	}
	if !query.AssignedTo.IsZero() {
		q = q.Where("assigned_to = ?", query.AssignedTo)
	}
	if !query.CreatorID.IsZero() {
		q = q.Where("creator_id = ?", query.CreatorID)
	}
	if query.Priority != "" {
		q = q.Where("priority = ?", query.Priority)
	}
	if query.FinalStatus != "" {
		q = q.Where("final_status = ?", query.FinalStatus)
	}
	if query.BatchDecision != "" {
		q = q.Where("batch_decision = ?", query.BatchDecision)
	}
	if err := q.Order("create_time DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return &records, nil
}

// QueryMyNCRs lists the cases a caller is involved with: pinned to them,
// waiting on their role, or created by them.
func QueryMyNCRs(sec *session.Session) (*[]domain.NCR, error) {
	var records []domain.NCR
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	if err := db.Model(&domain.NCR{}).
		Where("assigned_to = ? OR assigned_role = ? OR creator_id = ?",
			sec.Identity.ID, sec.Identity.Role, sec.Identity.ID).
		Order("create_time DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return &records, nil
}

// UpdateNCR edits the describable fields of a draft. Everything after
// submission is owned by the workflow engine.
func UpdateNCR(id types.ID, u *domain.NCRUpdating, sec *session.Session) (*domain.NCR, error) {
	var record domain.NCR
	var ev *event.EventRecord

	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&domain.NCR{ID: id}).First(&record).Error; err != nil {
			return err
		}
		if !sec.IsAdmin() && record.CreatorID != sec.Identity.ID {
			return bizerror.ErrForbidden
		}
		if record.WorkflowStage != domain.StageDraft {
			return bizerror.ErrDraftOnly
		}

		changes := map[string]interface{}{
			"title":       u.Title,
			"description": u.Description,
			"update_time": types.CurrentTimestamp(),
		}
		if u.Priority != "" {
			changes["priority"] = u.Priority
		}
		if err := tx.Model(&domain.NCR{}).Where(&domain.NCR{ID: id}).Update(changes).Error; err != nil {
			return err
		}
		if err := tx.Where(&domain.NCR{ID: id}).First(&record).Error; err != nil {
			return err
		}

		var err error
		ev, err = event.CreateEvent("ncr", record.ID, record.Title, event.EventCategoryPropertyUpdated, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return &record, nil
}

// DeleteNCR is the administrative hard delete, outside workflow scope.
func DeleteNCR(id types.ID, sec *session.Session) error {
	if !sec.IsAdmin() {
		return bizerror.ErrForbidden
	}

	var ev *event.EventRecord
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	err := db.Transaction(func(tx *gorm.DB) error {
		record := domain.NCR{ID: id}
		if err := tx.Where(&record).First(&record).Error; err != nil {
			return err
		}
		if err := tx.Delete(domain.NCR{}, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(domain.TransitionRecord{}, "ncr_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(domain.Comment{}, "ncr_id = ?", id).Error; err != nil {
			return err
		}

		var err error
		ev, err = event.CreateEvent("ncr", id, record.Title, event.EventCategoryDeleted, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return err
	}

	if event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return nil
}
