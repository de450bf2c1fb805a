package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sarwaraminy/hostapi/internal/domain/entity"
	"github.com/sarwaraminy/hostapi/internal/domain/repository"
)

// In-memory repositories for service tests. Error fields force failures;
// deleteVanishes simulates the row disappearing between the existence
// check and the delete.

type fakeUserRepo struct {
	byEmail   map[string]*entity.User
	nextID    int
	lookupErr error
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	u.CreatedAt = time.Now()
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeRoomRepo struct {
	rooms          map[string]*entity.Room
	order          []string
	nextID         int64
	lookupErr      error
	listErr        error
	deleteVanishes bool
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*entity.Room)}
}

func (f *fakeRoomRepo) Create(_ context.Context, r *entity.Room) error {
	if _, ok := f.rooms[r.RoomNumber]; ok {
		return repository.ErrDuplicate
	}
	f.nextID++
	r.ID = f.nextID
	cp := *r
	f.rooms[r.RoomNumber] = &cp
	f.order = append(f.order, r.RoomNumber)
	return nil
}

func (f *fakeRoomRepo) GetByNumber(_ context.Context, roomNumber string) (*entity.Room, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	r, ok := f.rooms[roomNumber]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, roomNumber, name string, bedInfo json.RawMessage) (*entity.Room, error) {
	r, ok := f.rooms[roomNumber]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.Name = name
	r.BedInfo = bedInfo
	cp := *r
	return &cp, nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, roomNumber string) (*entity.Room, error) {
	r, ok := f.rooms[roomNumber]
	if !ok || f.deleteVanishes {
		return nil, repository.ErrNotFound
	}
	delete(f.rooms, roomNumber)
	for i, n := range f.order {
		if n == roomNumber {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRoomRepo) List(_ context.Context) ([]entity.Room, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Room, 0, len(f.order))
	for _, n := range f.order {
		out = append(out, *f.rooms[n])
	}
	return out, nil
}
