package flow

import (
	"ncrtrack/domain"
	"ncrtrack/persistence"
	"ncrtrack/session"

	"github.com/fundwit/go-commons/types"
)

// QueryTransitions returns the audit trail of an NCR, latest first. The core
// exposes no mutation or deletion over these records.
func QueryTransitions(ncrID types.ID, sec *session.Session) ([]domain.TransitionRecord, error) {
	var records []domain.TransitionRecord
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	if err := db.Where(&domain.TransitionRecord{NcrID: ncrID}).
		Order("create_time DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
