package application

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/sarwaraminy/hostapi/internal/domain/entity"
	"github.com/sarwaraminy/hostapi/internal/domain/repository"
	"github.com/sarwaraminy/hostapi/pkg/apperr"
	"github.com/sarwaraminy/hostapi/pkg/helpers"
)

var (
	errRoomExists   = apperr.Conflict("Room already exists")
	errRoomNotFound = apperr.NotFound("Room not found")
	errRoomDelete   = apperr.Server("Room deletion failed")
)

const (
	roomListKey = "rooms:list"
	roomListTTL = 5 * time.Minute
)

// RoomService enforces room-number uniqueness and existence-checked
// create/update/delete. Redis is optional: when present, the full room
// list is cached and every mutation invalidates it.
type RoomService struct {
	Rooms  repository.RoomRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewRoomService(rooms repository.RoomRepository, rdb *redis.Client, logger *logrus.Logger) *RoomService {
	return &RoomService{Rooms: rooms, Redis: rdb, Logger: logger}
}

func (s *RoomService) serverError(op string, err error) error {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("op", op).Error("room store failure")
	}
	return apperr.Server("Server Error")
}

// missingBedInfo treats absent, empty, and JSON null bed configurations
// as not provided.
func missingBedInfo(bedInfo json.RawMessage) bool {
	return len(bedInfo) == 0 || string(bedInfo) == "null"
}

func (s *RoomService) invalidateList(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, roomListKey).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", roomListKey).Warn("room list cache invalidation failed")
	}
}

// Add creates a room after checking the number is free. The check and the
// insert are not atomic; the unique constraint on room.room_number is the
// authoritative guard and a lost race still reports a duplicate.
func (s *RoomService) Add(ctx context.Context, name, roomNumber string, bedInfo json.RawMessage) (*entity.Room, error) {
	if name == "" || roomNumber == "" || missingBedInfo(bedInfo) {
		return nil, errMissingFields
	}

	_, err := s.Rooms.GetByNumber(ctx, roomNumber)
	switch {
	case err == nil:
		return nil, errRoomExists
	case !errors.Is(err, repository.ErrNotFound):
		return nil, s.serverError("room add lookup", err)
	}

	room := &entity.Room{Name: name, RoomNumber: roomNumber, BedInfo: bedInfo}
	if err := s.Rooms.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errRoomExists
		}
		return nil, s.serverError("room add insert", err)
	}
	s.invalidateList(ctx)
	return room, nil
}

// Edit updates name and bed configuration for an existing room. The room
// number comes from the resource path and cannot be changed here.
func (s *RoomService) Edit(ctx context.Context, roomNumber, name string, bedInfo json.RawMessage) (*entity.Room, error) {
	if name == "" || missingBedInfo(bedInfo) {
		return nil, errMissingFields
	}

	if _, err := s.Rooms.GetByNumber(ctx, roomNumber); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errRoomNotFound
		}
		return nil, s.serverError("room edit lookup", err)
	}

	room, err := s.Rooms.Update(ctx, roomNumber, name, bedInfo)
	if err != nil {
		// Includes the room vanishing between check and update.
		return nil, s.serverError("room edit update", err)
	}
	s.invalidateList(ctx)
	return room, nil
}

// Delete removes a room and returns its pre-delete snapshot. If the row
// vanishes between the existence check and the delete, that is reported
// as a failed deletion, never a silent success.
func (s *RoomService) Delete(ctx context.Context, roomNumber string) (*entity.Room, error) {
	if _, err := s.Rooms.GetByNumber(ctx, roomNumber); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errRoomNotFound
		}
		return nil, s.serverError("room delete lookup", err)
	}

	room, err := s.Rooms.Delete(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if s.Logger != nil {
				s.Logger.WithField("room_number", roomNumber).Error("room deleted zero rows after existence check")
			}
			return nil, errRoomDelete
		}
		return nil, s.serverError("room delete", err)
	}
	s.invalidateList(ctx)
	return room, nil
}

// List returns every room in store order, a finite snapshot at call time.
func (s *RoomService) List(ctx context.Context) ([]entity.Room, error) {
	if s.Redis != nil {
		var cached []entity.Room
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, roomListKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	rooms, err := s.Rooms.List(ctx)
	if err != nil {
		return nil, s.serverError("room list", err)
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, roomListKey, rooms, roomListTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", roomListKey).Warn("room list cache write failed")
		}
	}
	return rooms, nil
}
