package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"devconnector/internal/domain"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.usersByID[user.ID] = user
	if user.Email != "" {
		m.usersByEmail[user.Email] = user.ID
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	if user, ok := m.usersByID[id]; ok {
		delete(m.usersByEmail, user.Email)
		delete(m.usersByID, id)
	}
	return nil
}

type mockProfileRepo struct {
	profilesByUser map[string]domain.Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profilesByUser: make(map[string]domain.Profile)}
}

func (m *mockProfileRepo) Create(_ context.Context, profile domain.Profile) error {
	m.profilesByUser[profile.UserID] = profile
	return nil
}

func (m *mockProfileRepo) Update(_ context.Context, profile domain.Profile) error {
	for userID, existing := range m.profilesByUser {
		if existing.ID == profile.ID {
			m.profilesByUser[userID] = profile
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID string) (domain.Profile, error) {
	profile, ok := m.profilesByUser[userID]
	if !ok {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return profile, nil
}

func (m *mockProfileRepo) GetByHandle(_ context.Context, handle string) (domain.Profile, error) {
	for _, profile := range m.profilesByUser {
		if profile.Handle == handle {
			return profile, nil
		}
	}
	return domain.Profile{}, pgx.ErrNoRows
}

func (m *mockProfileRepo) List(_ context.Context) ([]domain.Profile, error) {
	profiles := make([]domain.Profile, 0, len(m.profilesByUser))
	for _, profile := range m.profilesByUser {
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (m *mockProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	delete(m.profilesByUser, userID)
	return nil
}

type mockPostRepo struct {
	postsByID map[string]domain.Post
	order     []string
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{postsByID: make(map[string]domain.Post)}
}

func (m *mockPostRepo) Create(_ context.Context, post domain.Post) error {
	m.postsByID[post.ID] = post
	m.order = append([]string{post.ID}, m.order...)
	return nil
}

func (m *mockPostRepo) Update(_ context.Context, post domain.Post) error {
	if _, ok := m.postsByID[post.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.postsByID[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id string) (domain.Post, error) {
	post, ok := m.postsByID[id]
	if !ok {
		return domain.Post{}, pgx.ErrNoRows
	}
	return post, nil
}

func (m *mockPostRepo) List(_ context.Context) ([]domain.Post, error) {
	posts := make([]domain.Post, 0, len(m.order))
	for _, id := range m.order {
		posts = append(posts, m.postsByID[id])
	}
	return posts, nil
}

func (m *mockPostRepo) Delete(_ context.Context, id string) error {
	delete(m.postsByID, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(string) bool { return true }

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }
