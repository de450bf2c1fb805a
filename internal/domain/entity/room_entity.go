package entity

import "encoding/json"

// Room is a bookable unit. RoomNumber is the business key and is immutable
// once created; BedInfo is an opaque structured value stored as JSON and
// round-tripped untouched.
type Room struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	RoomNumber string          `json:"roomNumber"`
	BedInfo    json.RawMessage `json:"bedInfo"`
}
