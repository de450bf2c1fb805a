package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarwaraminy/hostapi/internal/domain/repository"
	"github.com/sarwaraminy/hostapi/pkg/apperr"
	"github.com/sarwaraminy/hostapi/pkg/helpers"
)

func newAuthService(repo *fakeUserRepo) (*AuthService, *helpers.JWTManager) {
	jwtm := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(repo, jwtm, nil), jwtm
}

func TestAuthService_Signup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, jwtm := newAuthService(newFakeUserRepo())

	res, err := svc.Signup(ctx, "ana@example.com", "hunter22", "Ana", "Lee")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.Equal(t, "Ana", res.User.FirstName)
	assert.Equal(t, "Lee", res.User.LastName)
	assert.NotEmpty(t, res.User.ID)

	claims, err := jwtm.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newAuthService(newFakeUserRepo())

	_, err := svc.Signup(ctx, "dup@example.com", "pw1", "First", "User")
	require.NoError(t, err)

	// a second signup with the same email fails no matter the other fields
	_, err = svc.Signup(ctx, "dup@example.com", "other-pw", "Other", "Name")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.EqualError(t, err, "User already exists")
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newAuthService(newFakeUserRepo())

	cases := [][4]string{
		{"", "pw", "First", "Last"},
		{"a@b.c", "", "First", "Last"},
		{"a@b.c", "pw", "", "Last"},
		{"a@b.c", "pw", "First", ""},
	}
	for _, tc := range cases {
		_, err := svc.Signup(ctx, tc[0], tc[1], tc[2], tc[3])
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.EqualError(t, err, "All fields are required")
	}
}

func TestAuthService_Signup_LostRaceReportsConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeUserRepo()
	svc, _ := newAuthService(repo)

	// insert hits the unique constraint even though the pre-check passed
	repo.createErr = repository.ErrDuplicate
	_, err := svc.Signup(ctx, "race@example.com", "pw", "Ra", "Ce")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.EqualError(t, err, "User already exists")
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, jwtm := newAuthService(newFakeUserRepo())

	res, err := svc.Signup(ctx, "bob@example.com", "correct-horse", "Bob", "Kay")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "bob@example.com", "correct-horse")
	require.NoError(t, err)

	claims, err := jwtm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestAuthService_Login_EnumerationResistance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newAuthService(newFakeUserRepo())
	_, err := svc.Signup(ctx, "carol@example.com", "right-pw", "Carol", "Ng")
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, "nobody@example.com", "whatever")
	_, errWrongPw := svc.Login(ctx, "carol@example.com", "wrong-pw")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	// identical failure for unknown email and wrong password
	assert.Equal(t, errUnknown, errWrongPw)
	assert.EqualError(t, errUnknown, "Invalid email or password")
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(errUnknown))
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newAuthService(newFakeUserRepo())

	for _, tc := range [][2]string{{"", "pw"}, {"a@b.c", ""}, {"", ""}} {
		_, err := svc.Login(ctx, tc[0], tc[1])
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.EqualError(t, err, "Email and password are required")
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeUserRepo()
	repo.lookupErr = errors.New("connection refused")
	svc, _ := newAuthService(repo)

	_, err := svc.Login(ctx, "x@example.com", "pw")
	require.Error(t, err)
	assert.Equal(t, apperr.KindServer, apperr.KindOf(err))
	// no store detail leaks to the caller
	assert.EqualError(t, err, "Server Error")
}

func TestAuthService_UserByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newAuthService(newFakeUserRepo())
	res, err := svc.Signup(ctx, "dave@example.com", "pw", "Dave", "Om")
	require.NoError(t, err)

	u, err := svc.UserByID(ctx, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, res.User, *u)

	_, err = svc.UserByID(ctx, "missing-id")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
