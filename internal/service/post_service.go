package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"devconnector/internal/domain"
	"devconnector/internal/repository"
)

// PostService coordina el feed de publicaciones, likes y comentarios.
type PostService struct {
	logger *zap.Logger
	posts  repository.PostRepository
}

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("not the post owner")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post not yet liked")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("not the comment owner")
)

func NewPostService(logger *zap.Logger, posts repository.PostRepository) *PostService {
	return &PostService{logger: logger, posts: posts}
}

// Create publica un post a nombre del sujeto autenticado. Nombre y avatar
// se copian de los claims para mostrarlos sin resolver el usuario.
func (s *PostService) Create(ctx context.Context, userID, name, avatar, text string) (domain.Post, error) {
	post := domain.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      strings.TrimSpace(text),
		Name:      name,
		Avatar:    avatar,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// List devuelve el feed ordenado del más reciente al más antiguo.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) GetByID(ctx context.Context, id string) (domain.Post, error) {
	return s.wrapNotFound(s.posts.GetByID(ctx, id))
}

// Delete borra un post sólo si el sujeto es su dueño. No-dueño es un
// resultado distinto a no-autenticado.
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	post, err := s.wrapNotFound(s.posts.GetByID(ctx, postID))
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrNotPostOwner
	}
	return s.posts.Delete(ctx, postID)
}

// Like registra el like si el sujeto no lo había dado ya, y lo persiste.
func (s *PostService) Like(ctx context.Context, userID, postID string) (domain.Post, error) {
	post, err := s.wrapNotFound(s.posts.GetByID(ctx, postID))
	if err != nil {
		return domain.Post{}, err
	}
	if post.HasLikeFrom(userID) {
		return domain.Post{}, ErrAlreadyLiked
	}

	post.Likes = append([]domain.Like{{UserID: userID}}, post.Likes...)
	if err := s.posts.Update(ctx, post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// Unlike retira un like existente del sujeto.
func (s *PostService) Unlike(ctx context.Context, userID, postID string) (domain.Post, error) {
	post, err := s.wrapNotFound(s.posts.GetByID(ctx, postID))
	if err != nil {
		return domain.Post{}, err
	}
	if !post.HasLikeFrom(userID) {
		return domain.Post{}, ErrNotLiked
	}

	kept := post.Likes[:0]
	for _, l := range post.Likes {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	post.Likes = kept

	if err := s.posts.Update(ctx, post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// AddComment antepone un comentario con identidad propia.
func (s *PostService) AddComment(ctx context.Context, userID, name, avatar, postID, text string) (domain.Post, error) {
	post, err := s.wrapNotFound(s.posts.GetByID(ctx, postID))
	if err != nil {
		return domain.Post{}, err
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      strings.TrimSpace(text),
		Name:      name,
		Avatar:    avatar,
		CreatedAt: time.Now().UTC(),
	}
	post.Comments = append([]domain.Comment{comment}, post.Comments...)

	if err := s.posts.Update(ctx, post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// DeleteComment borra un comentario sólo si el sujeto es su autor.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID, commentID string) (domain.Post, error) {
	post, err := s.wrapNotFound(s.posts.GetByID(ctx, postID))
	if err != nil {
		return domain.Post{}, err
	}

	idx := -1
	for i, c := range post.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Post{}, ErrCommentNotFound
	}
	if post.Comments[idx].UserID != userID {
		return domain.Post{}, ErrNotCommentOwner
	}

	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)
	if err := s.posts.Update(ctx, post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (s *PostService) wrapNotFound(post domain.Post, err error) (domain.Post, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Post{}, ErrPostNotFound
	}
	return post, err
}
