package repository

import (
	"context"
	"encoding/json"

	"github.com/sarwaraminy/hostapi/internal/domain/entity"
)

// RoomRepository defines the store operations for rooms. Lookups key on
// the room number, not the surrogate id. GetByNumber returns ErrNotFound
// when absent; Create returns ErrDuplicate on a taken room number;
// Update and Delete return ErrNotFound when no row was affected.
type RoomRepository interface {
	Create(ctx context.Context, r *entity.Room) error
	GetByNumber(ctx context.Context, roomNumber string) (*entity.Room, error)
	Update(ctx context.Context, roomNumber, name string, bedInfo json.RawMessage) (*entity.Room, error)
	Delete(ctx context.Context, roomNumber string) (*entity.Room, error)
	List(ctx context.Context) ([]entity.Room, error)
}
