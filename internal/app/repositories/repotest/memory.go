// Package repotest provides an in-memory implementation of the repository
// interfaces for handler and service tests.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/courseapi/internal/app/models"
	"github.com/yigit/courseapi/internal/app/repositories"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
)

var (
	_ repositories.UserStore   = (*MemoryStore)(nil)
	_ repositories.CourseStore = (*MemoryStore)(nil)
)

// MemoryStore keeps users and courses in maps and mirrors the constraint
// behaviour of the SQL schema: unique emails and a required course owner.
type MemoryStore struct {
	mu         sync.Mutex
	users      map[int64]models.User
	courses    map[int64]models.Course
	nextUserID int64
	nextCourse int64

	// Err, when set, is returned by every operation.
	Err error
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[int64]models.User),
		courses: make(map[int64]models.Course),
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	for _, u := range s.users {
		if u.EmailAddress == user.EmailAddress {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}

	s.nextUserID++
	now := time.Now()
	user.ID = s.nextUserID
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = *user
	return user.ID, nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	for _, u := range s.users {
		if u.EmailAddress == email {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *MemoryStore) CountUsers(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.users)), nil
}

func (s *MemoryStore) GetAllCourses(_ context.Context) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	ids := make([]int64, 0, len(s.courses))
	for id := range s.courses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*models.Course, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.withOwner(s.courses[id]))
	}
	return out, nil
}

func (s *MemoryStore) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	c, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.withOwner(c), nil
}

func (s *MemoryStore) CreateCourse(_ context.Context, course *models.Course) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	if _, ok := s.users[course.UserID]; !ok {
		return 0, apperrors.ErrOwnerNotFound
	}

	s.nextCourse++
	now := time.Now()
	stored := *course
	stored.ID = s.nextCourse
	stored.CreatedAt, stored.UpdatedAt = now, now
	stored.Owner = nil
	s.courses[stored.ID] = stored
	course.ID = stored.ID
	return stored.ID, nil
}

// UpdateCourse rewrites the editable columns only; the owner is kept.
func (s *MemoryStore) UpdateCourse(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	stored, ok := s.courses[course.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	stored.Title = course.Title
	stored.Description = course.Description
	stored.EstimatedTime = course.EstimatedTime
	stored.MaterialsNeeded = course.MaterialsNeeded
	stored.UpdatedAt = time.Now()
	s.courses[course.ID] = stored
	return nil
}

func (s *MemoryStore) DeleteCourse(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

// withOwner mirrors the SQL projection: owner loaded without password or timestamps.
func (s *MemoryStore) withOwner(c models.Course) *models.Course {
	if u, ok := s.users[c.UserID]; ok {
		c.Owner = &models.User{
			ID:           u.ID,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			EmailAddress: u.EmailAddress,
		}
	}
	return &c
}
