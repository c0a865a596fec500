package event

import (
	"ncrtrack/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

type EventHandler func(record *EventRecord)

var (
	EventPersistCreateFunc = EventPersistCreate
	InvokeHandlersFunc     = InvokeHandlers

	handlers []EventHandler
)

func RegisterHandler(h EventHandler) {
	handlers = append(handlers, h)
}

// CreateEvent appends an event record within the caller's transaction. The
// caller is expected to dispatch with InvokeHandlersFunc after commit.
func CreateEvent(sourceType string, sourceId types.ID, sourceDesc string, category EventCategory,
	identity *session.Identity, db *gorm.DB) (*EventRecord, error) {

	record := EventRecord{
		Event: Event{
			SourceType: sourceType,
			SourceId:   sourceId,
			SourceDesc: sourceDesc,

			EventCategory: category,

			CreatorId:   identity.ID,
			CreatorName: identity.Nickname,
		},
		Synced:    false,
		Timestamp: types.CurrentTimestamp(),
	}
	if err := EventPersistCreateFunc(&record, db); err != nil {
		return nil, err
	}
	return &record, nil
}

func EventPersistCreate(record *EventRecord, db *gorm.DB) error {
	return db.Create(record).Error
}

func InvokeHandlers(record *EventRecord) {
	if record == nil {
		return
	}
	for _, h := range handlers {
		h(record)
	}
}
