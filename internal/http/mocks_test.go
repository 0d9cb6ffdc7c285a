package http

import (
	"context"

	"github.com/jackc/pgx/v5"

	"devconnector/internal/domain"
)

type memUserRepo struct {
	users map[string]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]domain.User)}
}

func (m *memUserRepo) Create(_ context.Context, user domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, pgx.ErrNoRows
}

func (m *memUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

type memProfileRepo struct {
	profiles map[string]domain.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[string]domain.Profile)}
}

func (m *memProfileRepo) Create(_ context.Context, profile domain.Profile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *memProfileRepo) Update(_ context.Context, profile domain.Profile) error {
	for userID, existing := range m.profiles {
		if existing.ID == profile.ID {
			m.profiles[userID] = profile
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memProfileRepo) GetByUserID(_ context.Context, userID string) (domain.Profile, error) {
	profile, ok := m.profiles[userID]
	if !ok {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return profile, nil
}

func (m *memProfileRepo) GetByHandle(_ context.Context, handle string) (domain.Profile, error) {
	for _, profile := range m.profiles {
		if profile.Handle == handle {
			return profile, nil
		}
	}
	return domain.Profile{}, pgx.ErrNoRows
}

func (m *memProfileRepo) List(_ context.Context) ([]domain.Profile, error) {
	profiles := make([]domain.Profile, 0, len(m.profiles))
	for _, profile := range m.profiles {
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (m *memProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	delete(m.profiles, userID)
	return nil
}

type memPostRepo struct {
	posts map[string]domain.Post
	order []string
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[string]domain.Post)}
}

func (m *memPostRepo) Create(_ context.Context, post domain.Post) error {
	m.posts[post.ID] = post
	m.order = append([]string{post.ID}, m.order...)
	return nil
}

func (m *memPostRepo) Update(_ context.Context, post domain.Post) error {
	if _, ok := m.posts[post.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.posts[post.ID] = post
	return nil
}

func (m *memPostRepo) GetByID(_ context.Context, id string) (domain.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return domain.Post{}, pgx.ErrNoRows
	}
	return post, nil
}

func (m *memPostRepo) List(_ context.Context) ([]domain.Post, error) {
	posts := make([]domain.Post, 0, len(m.order))
	for _, id := range m.order {
		posts = append(posts, m.posts[id])
	}
	return posts, nil
}

func (m *memPostRepo) Delete(_ context.Context, id string) error {
	delete(m.posts, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
