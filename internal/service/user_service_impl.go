package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/google/uuid"
)

type userService struct {
	state    StateManager
	observer UseCaseObserver
}

func NewUserService(state StateManager, observers ...UseCaseObserver) UserService {
	return &userService{
		state:    state,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Identify activates the user with the given login and deactivates all others.
func (s *userService) Identify(ctx context.Context, username string) (user domain.User, err error) {
	startedAt := time.Now()
	fields := map[string]any{"username": username}
	defer func() {
		observe(ctx, s.observer, "identify", startedAt, fields, err)
	}()

	username = strings.TrimSpace(username)
	err = s.state.Mutate(ctx, func(doc *domain.Document) (*domain.Patch, error) {
		idx := domain.IndexOfUsername(doc.Users, username)
		if username == "" || idx < 0 {
			return nil, ErrUserNotFound
		}
		users := domain.ActivateAt(doc.Users, idx)
		user = users[idx]
		p := domain.UsersPatch(users)
		return &p, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Logout clears every active flag. With nobody active it writes nothing.
func (s *userService) Logout(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "logout", startedAt, nil, err)
	}()

	return s.state.Mutate(ctx, func(doc *domain.Document) (*domain.Patch, error) {
		if _, ok := doc.ActiveUser(); !ok {
			return nil, nil
		}
		p := domain.UsersPatch(domain.ActivateAt(doc.Users, -1))
		return &p, nil
	})
}

func (s *userService) ActiveUser() (domain.User, bool) {
	doc := s.state.Current()
	if doc == nil {
		return domain.User{}, false
	}
	return doc.ActiveUser()
}

func (s *userService) List() ([]domain.User, error) {
	doc := s.state.Current()
	if doc == nil {
		return nil, ErrNotLoaded
	}
	return doc.Users, nil
}

func (s *userService) Add(ctx context.Context, name, username string, perm domain.Permission) (user domain.User, err error) {
	startedAt := time.Now()
	fields := map[string]any{"username": username, "permission": string(perm)}
	defer func() {
		observe(ctx, s.observer, "user-add", startedAt, fields, err)
	}()

	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, ErrEmptyText
	}
	if !domain.ValidPermissions[string(perm)] {
		return domain.User{}, ErrInvalidPermission
	}
	user = domain.User{
		ID:         uuid.New().String(),
		Name:       domain.CoalesceStr(name, username),
		Username:   username,
		Permission: perm,
	}
	err = s.state.Mutate(ctx, func(doc *domain.Document) (*domain.Patch, error) {
		if domain.IndexOfUsername(doc.Users, username) >= 0 {
			return nil, ErrDuplicateUsername
		}
		users := make([]domain.User, len(doc.Users), len(doc.Users)+1)
		copy(users, doc.Users)
		p := domain.UsersPatch(append(users, user))
		return &p, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *userService) Remove(ctx context.Context, username string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "user-remove", startedAt, map[string]any{"username": username}, err)
	}()

	return s.state.Mutate(ctx, func(doc *domain.Document) (*domain.Patch, error) {
		idx := domain.IndexOfUsername(doc.Users, username)
		if idx < 0 {
			return nil, ErrUserNotFound
		}
		users := make([]domain.User, 0, len(doc.Users)-1)
		users = append(users, doc.Users[:idx]...)
		users = append(users, doc.Users[idx+1:]...)
		p := domain.UsersPatch(users)
		return &p, nil
	})
}
