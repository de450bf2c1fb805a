package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarwaraminy/hostapi/internal/application"
	"github.com/sarwaraminy/hostapi/internal/domain/entity"
	"github.com/sarwaraminy/hostapi/internal/domain/repository"
	"github.com/sarwaraminy/hostapi/internal/interface/middleware"
	"github.com/sarwaraminy/hostapi/pkg/helpers"
)

// Wire-level tests: services on in-memory repositories behind the real
// routes, asserting the exact statuses and body shapes of the API.

type memUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int
}

func (f *memUserRepo) Create(_ context.Context, u *entity.User) error {
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

func (f *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memRoomRepo struct {
	rooms  map[string]*entity.Room
	order  []string
	nextID int64
}

func (f *memRoomRepo) Create(_ context.Context, r *entity.Room) error {
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

func (f *memRoomRepo) GetByNumber(_ context.Context, roomNumber string) (*entity.Room, error) {
	r, ok := f.rooms[roomNumber]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *memRoomRepo) Update(_ context.Context, roomNumber, name string, bedInfo json.RawMessage) (*entity.Room, error) {
	r, ok := f.rooms[roomNumber]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.Name = name
	r.BedInfo = bedInfo
	cp := *r
	return &cp, nil
}

func (f *memRoomRepo) Delete(_ context.Context, roomNumber string) (*entity.Room, error) {
	r, ok := f.rooms[roomNumber]
	if !ok {
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

func (f *memRoomRepo) List(_ context.Context) ([]entity.Room, error) {
	out := make([]entity.Room, 0, len(f.order))
	for _, n := range f.order {
		out = append(out, *f.rooms[n])
	}
	return out, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtm := helpers.NewJWTManager("test-secret", time.Hour)
	authSvc := application.NewAuthService(&memUserRepo{byEmail: map[string]*entity.User{}}, jwtm, nil)
	roomSvc := application.NewRoomService(&memRoomRepo{rooms: map[string]*entity.Room{}}, nil, nil)

	ah := NewAuthHandler(authSvc, nil)
	rh := NewRoomHandler(roomSvc, nil)

	r := gin.New()
	r.POST("/login", ah.Login)
	r.POST("/signup", ah.Signup)
	r.GET("/me", middleware.BearerAuth(jwtm), ah.Me)
	r.GET("/rooms", rh.List)
	r.POST("/room/add", rh.Add)
	r.PUT("/room/edit/:roomNumber", rh.Edit)
	r.DELETE("/room/delete/:roomNumber", rh.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
