package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sarwaraminy/hostapi/internal/domain/entity"
	"github.com/sarwaraminy/hostapi/internal/domain/repository"
)

type RoomRepository struct {
	db DB
}

func NewRoomRepository(db DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *entity.Room) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO room (name, room_number, bed_info)
		VALUES ($1, $2, $3)
		RETURNING room_id
	`, room.Name, room.RoomNumber, room.BedInfo)

	if err := row.Scan(&room.ID); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	room := &entity.Room{}
	row := r.db.QueryRow(ctx, `
		SELECT room_id, name, room_number, bed_info
		FROM room
		WHERE room_number = $1
	`, roomNumber)

	if err := row.Scan(&room.ID, &room.Name, &room.RoomNumber, &room.BedInfo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

// Update changes name and bed_info only; the room number is the lookup
// key and never changes. Returns ErrNotFound when no row matched.
func (r *RoomRepository) Update(ctx context.Context, roomNumber, name string, bedInfo json.RawMessage) (*entity.Room, error) {
	room := &entity.Room{}
	row := r.db.QueryRow(ctx, `
		UPDATE room
		SET name = $1, bed_info = $2
		WHERE room_number = $3
		RETURNING room_id, name, room_number, bed_info
	`, name, bedInfo, roomNumber)

	if err := row.Scan(&room.ID, &room.Name, &room.RoomNumber, &room.BedInfo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

// Delete removes the room and returns its final snapshot so callers can
// confirm what was removed. Returns ErrNotFound when no row matched.
func (r *RoomRepository) Delete(ctx context.Context, roomNumber string) (*entity.Room, error) {
	room := &entity.Room{}
	row := r.db.QueryRow(ctx, `
		DELETE FROM room
		WHERE room_number = $1
		RETURNING room_id, name, room_number, bed_info
	`, roomNumber)

	if err := row.Scan(&room.ID, &room.Name, &room.RoomNumber, &room.BedInfo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]entity.Room, error) {
	rows, err := r.db.Query(ctx, `
		SELECT room_id, name, room_number, bed_info
		FROM room
		ORDER BY room_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]entity.Room, 0)
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.RoomNumber, &room.BedInfo); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

var _ repository.RoomRepository = (*RoomRepository)(nil)
