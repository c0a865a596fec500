package indices

import (
	"context"
	"encoding/json"
	"errors"

	"ncrtrack/domain"
	"ncrtrack/es"
	"ncrtrack/event"
	"ncrtrack/persistence"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var NCRIndexName = "ncrs"

type NCRDocument struct {
	domain.NCR
}

var (
	IndexNCRFunc   = IndexNCR
	SearchNCRsFunc = SearchNCRs
)

func IndexNCR(ncr *domain.NCR) error {
	return es.IndexFunc(context.Background(), NCRIndexName, ncr.ID, NCRDocument{NCR: *ncr})
}

func SearchNCRs(keyword string) ([]domain.NCR, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  keyword,
				"fields": []string{"title", "description", "number", "engineeringFindings", "rootCauseAnalysis"},
			},
		},
	}
	sources, err := es.SearchFunc(context.Background(), NCRIndexName, query)
	if err != nil {
		return nil, err
	}

	records := make([]domain.NCR, 0, len(sources))
	for _, source := range sources {
		doc := NCRDocument{}
		if err := json.Unmarshal(source, &doc); err != nil {
			return nil, err
		}
		records = append(records, doc.NCR)
	}
	return records, nil
}

// SyncOnEvent keeps the search index loosely in sync with the database. The
// index is a convenience view, failures are logged and never surfaced to the
// workflow caller.
func SyncOnEvent(record *event.EventRecord) {
	if record == nil || record.SourceType != "ncr" {
		return
	}

	if record.EventCategory == event.EventCategoryDeleted {
		if err := es.DeleteFunc(context.Background(), NCRIndexName, record.SourceId); err != nil {
			logrus.Warnf("remove ncr %d from index: %v", record.SourceId, err)
		}
		return
	}

	ncr := domain.NCR{ID: record.SourceId}
	db := persistence.ActiveDataSourceManager.GormDB(context.Background())
	if err := db.Where(&domain.NCR{ID: record.SourceId}).First(&ncr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return
		}
		logrus.Warnf("load ncr %d for indexing: %v", record.SourceId, err)
		return
	}
	if err := IndexNCRFunc(&ncr); err != nil {
		logrus.Warnf("index ncr %d: %v", ncr.ID, err)
		return
	}
	logrus.Infof("indexed ncr %d %s", ncr.ID, ncr.Number)
}

func Bootstrap() {
	event.RegisterHandler(SyncOnEvent)
}
