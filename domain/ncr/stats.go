package ncr

import (
	"ncrtrack/domain"
	"ncrtrack/persistence"
	"ncrtrack/session"
)

type DashboardStats struct {
	Total     int64 `json:"total"`
	MyPending int64 `json:"myPending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	InRework  int64 `json:"inRework"`

	ByStage map[domain.Stage]int64 `json:"byStage"`
}

var QueryDashboardStatsFunc = QueryDashboardStats

func QueryDashboardStats(sec *session.Session) (*DashboardStats, error) {
	stats := DashboardStats{ByStage: map[domain.Stage]int64{}}
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)

	if err := db.Model(&domain.NCR{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.NCR{}).
		Where("final_status = ?", domain.FinalStatusInProgress).
		Where("assigned_to = ? OR assigned_role = ? OR creator_id = ?",
			sec.Identity.ID, sec.Identity.Role, sec.Identity.ID).
		Count(&stats.MyPending).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.NCR{}).Where("final_status = ?", domain.FinalStatusApproved).
		Count(&stats.Approved).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.NCR{}).Where("final_status = ?", domain.FinalStatusRejected).
		Count(&stats.Rejected).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.NCR{}).Where("workflow_stage = ?", domain.StageRework).
		Count(&stats.InRework).Error; err != nil {
		return nil, err
	}

	var rows []stageCount
	if err := db.Model(&domain.NCR{}).Select("workflow_stage, count(*) AS total").
		Group("workflow_stage").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.ByStage[row.WorkflowStage] = row.Total
	}

	return &stats, nil
}

type stageCount struct {
	WorkflowStage domain.Stage `json:"workflowStage"`
	Total         int64        `json:"total"`
}
