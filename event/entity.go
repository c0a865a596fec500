package event

import (
	"github.com/fundwit/go-commons/types"
)

const (
	EventCategoryCreated         = EventCategory("CREATED")
	EventCategoryTransited       = EventCategory("TRANSITED")
	EventCategoryPropertyUpdated = EventCategory("PROPERTY_UPDATED")
	EventCategoryDeleted         = EventCategory("DELETED")
)

type EventCategory string

type Event struct {
	SourceId   types.ID `json:"sourceId"`
	SourceType string   `json:"sourceType"`
	SourceDesc string   `json:"sourceDesc"`

	CreatorId   types.ID `json:"creatorId"`
	CreatorName string   `json:"creatorName"`

	EventCategory EventCategory `json:"eventCategory"`
}

type EventRecord struct {
	Event

	Timestamp types.Timestamp `json:"timestamp" sql:"type:DATETIME(6)"`
	Synced    bool            `json:"synced"`
}

func (r *EventRecord) TableName() string {
	return "events"
}
