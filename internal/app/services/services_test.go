package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseapi/internal/app/models"
	"github.com/yigit/courseapi/internal/app/models/dto"
	"github.com/yigit/courseapi/internal/app/repositories/repotest"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestServices(t *testing.T) (*Services, *repotest.MemoryStore) {
	t.Helper()
	store := repotest.NewMemoryStore()
	return NewServices(store, store, bcrypt.MinCost, zerolog.Nop()), store
}

func strPtr(s string) *string { return &s }

func signup(t *testing.T, svc *Services, email string) *models.User {
	t.Helper()
	user, err := svc.User.CreateUser(context.Background(), &dto.CreateUserRequest{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: email,
		Password:     "password",
	})
	require.NoError(t, err)
	return user
}

func validationMessages(t *testing.T, err error) []string {
	t.Helper()
	var ve *apperrors.ValidationError
	require.True(t, errors.As(err, &ve), "expected a validation error, got %v", err)
	return ve.Messages
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password", func(t *testing.T) {
		svc, store := newTestServices(t)
		user := signup(t, svc, "joe@smith.com")

		stored, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "password", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password")))
	})

	t.Run("reports every missing field in order", func(t *testing.T) {
		svc, _ := newTestServices(t)
		_, err := svc.User.CreateUser(ctx, &dto.CreateUserRequest{})

		assert.Equal(t, []string{
			dto.MsgFirstNameRequired,
			dto.MsgLastNameRequired,
			dto.MsgEmailRequired,
			dto.MsgPasswordRequired,
		}, validationMessages(t, err))
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		svc, _ := newTestServices(t)
		_, err := svc.User.CreateUser(ctx, &dto.CreateUserRequest{
			FirstName: "Joe", LastName: "Smith", EmailAddress: "not-an-email", Password: "pw",
		})
		assert.Equal(t, []string{dto.MsgEmailInvalid}, validationMessages(t, err))
	})

	t.Run("rejects a password bcrypt cannot hash", func(t *testing.T) {
		svc, store := newTestServices(t)
		_, err := svc.User.CreateUser(ctx, &dto.CreateUserRequest{
			FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: strings.Repeat("é", 40),
		})
		assert.Equal(t, []string{dto.MsgPasswordTooLong}, validationMessages(t, err))

		count, err := store.CountUsers(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, store := newTestServices(t)
		signup(t, svc, "joe@smith.com")

		_, err := svc.User.CreateUser(ctx, &dto.CreateUserRequest{
			FirstName: "Other", LastName: "Person", EmailAddress: "joe@smith.com", Password: "pw",
		})
		assert.Equal(t, []string{dto.MsgEmailInUse}, validationMessages(t, err))

		count, err := store.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestGetCurrentUser(t *testing.T) {
	svc, _ := newTestServices(t)
	user := signup(t, svc, "joe@smith.com")

	got, err := svc.User.GetCurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "joe@smith.com", got.EmailAddress)

	_, err = svc.User.GetCurrentUser(context.Background(), user.ID+1)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Equal(t, dto.MsgUserNotFound, err.Error())
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	user := signup(t, svc, "joe@smith.com")

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Auth.Authenticate(ctx, "joe@smith.com", "password")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Auth.Authenticate(ctx, "nobody@smith.com", "password")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("email match is exact", func(t *testing.T) {
		_, err := svc.Auth.Authenticate(ctx, "JOE@smith.com", "password")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Auth.Authenticate(ctx, "joe@smith.com", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("store failure is not an auth failure", func(t *testing.T) {
		store.Err = errors.New("db down")
		defer func() { store.Err = nil }()

		_, err := svc.Auth.Authenticate(ctx, "joe@smith.com", "password")
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestCourseLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	owner := signup(t, svc, "joe@smith.com")
	other := signup(t, svc, "sally@jones.com")

	id, err := svc.Course.CreateCourse(ctx, owner, &dto.CourseRequest{
		Title:         "Bookcase",
		Description:   "Build a bookcase",
		UserID:        owner.ID,
		EstimatedTime: strPtr("12 hours"),
	})
	require.NoError(t, err)

	t.Run("list and fetch include the owner", func(t *testing.T) {
		courses, err := svc.Course.GetAllCourses(ctx)
		require.NoError(t, err)
		require.Len(t, courses, 1)
		require.NotNil(t, courses[0].Owner)
		assert.Equal(t, owner.EmailAddress, courses[0].Owner.EmailAddress)

		course, err := svc.Course.GetCourseByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Bookcase", course.Title)
	})

	t.Run("update by another user is forbidden", func(t *testing.T) {
		err := svc.Course.UpdateCourse(ctx, other, id, &dto.CourseRequest{Title: "X", Description: "Y", UserID: other.ID})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Equal(t, dto.MsgOwnCoursesOnly, err.Error())
	})

	t.Run("update validates before checking ownership", func(t *testing.T) {
		err := svc.Course.UpdateCourse(ctx, other, id, &dto.CourseRequest{})
		assert.Equal(t, []string{
			dto.MsgTitleRequired,
			dto.MsgDescriptionRequired,
			dto.MsgUserIDRequired,
		}, validationMessages(t, err))
	})

	t.Run("owner update keeps owner and omitted optional fields", func(t *testing.T) {
		err := svc.Course.UpdateCourse(ctx, owner, id, &dto.CourseRequest{
			Title:       "Updated",
			Description: "New description",
			UserID:      other.ID,
		})
		require.NoError(t, err)

		course, err := svc.Course.GetCourseByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Updated", course.Title)
		assert.Equal(t, "New description", course.Description)
		assert.Equal(t, owner.ID, course.UserID)
		require.NotNil(t, course.EstimatedTime)
		assert.Equal(t, "12 hours", *course.EstimatedTime)
	})

	t.Run("delete by another user is forbidden", func(t *testing.T) {
		err := svc.Course.DeleteCourse(ctx, other, id)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.Course.DeleteCourse(ctx, owner, id))

		_, err := svc.Course.GetCourseByID(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("missing course", func(t *testing.T) {
		err := svc.Course.DeleteCourse(ctx, owner, id)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

		err = svc.Course.UpdateCourse(ctx, owner, id, &dto.CourseRequest{Title: "T", Description: "D", UserID: owner.ID})
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	owner := signup(t, svc, "joe@smith.com")
	other := signup(t, svc, "sally@jones.com")

	t.Run("owner taken from payload", func(t *testing.T) {
		id, err := svc.Course.CreateCourse(ctx, owner, &dto.CourseRequest{Title: "T", Description: "D", UserID: other.ID})
		require.NoError(t, err)

		course, err := svc.Course.GetCourseByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, other.ID, course.UserID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, err := svc.Course.CreateCourse(ctx, owner, &dto.CourseRequest{Title: "T", Description: "D", UserID: 999})
		assert.Equal(t, []string{dto.MsgOwnerUnknown}, validationMessages(t, err))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Course.CreateCourse(ctx, owner, &dto.CourseRequest{UserID: owner.ID})
		assert.Equal(t, []string{dto.MsgTitleRequired, dto.MsgDescriptionRequired}, validationMessages(t, err))
	})
}
