package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sheponsu/blood-aid-server/internal/apperrors"
	"github.com/sheponsu/blood-aid-server/internal/domain"
	"github.com/sheponsu/blood-aid-server/internal/repository"
	"github.com/sheponsu/blood-aid-server/pkg/api"
)

// BlogPayload is the submission body for a new blog post. New posts always
// start as drafts; publishing is a separate admin action.
type BlogPayload struct {
	Title    string
	Image    string
	Category string
	Content  string
}

// BlogUpdatePayload is a partial edit; nil fields stay untouched.
type BlogUpdatePayload struct {
	Title    *string
	Image    *string
	Category *string
	Content  *string
	Status   *string
}

type BlogService interface {
	Create(ctx context.Context, payload BlogPayload) (*api.InsertResult, error)
	Get(ctx context.Context, id string) (*api.Blog, error)
	ListAll(ctx context.Context) ([]api.Blog, error)
	ListPublished(ctx context.Context) ([]api.Blog, error)
	Update(ctx context.Context, id string, payload BlogUpdatePayload) (*api.ModifyResult, error)
	Delete(ctx context.Context, id string) (*api.DeleteResult, error)
}

type BlogServiceImpl struct {
	blogs repository.BlogStore
	log   *slog.Logger
}

func NewBlogService(blogs repository.BlogStore, log *slog.Logger) *BlogServiceImpl {
	return &BlogServiceImpl{
		blogs: blogs,
		log:   log,
	}
}

func (s *BlogServiceImpl) Create(ctx context.Context, payload BlogPayload) (*api.InsertResult, error) {
	const op = "internal.service.blog.Create"
	log := s.log.With(slog.String("op", op))

	id, err := s.blogs.Create(ctx, &domain.Blog{
		Title:    payload.Title,
		Image:    payload.Image,
		Category: payload.Category,
		Content:  payload.Content,
		Status:   domain.BlogDraft,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create blog: %w", op, err)
	}

	log.Info("blog created", slog.String("blog_id", id))

	return &api.InsertResult{InsertedID: id}, nil
}

func (s *BlogServiceImpl) Get(ctx context.Context, id string) (*api.Blog, error) {
	const op = "internal.service.blog.Get"

	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get blog: %w", op, err)
	}

	return toAPIBlog(blog), nil
}

func (s *BlogServiceImpl) ListAll(ctx context.Context) ([]api.Blog, error) {
	const op = "internal.service.blog.ListAll"

	blogs, err := s.blogs.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list blogs: %w", op, err)
	}

	return toAPIBlogs(blogs), nil
}

func (s *BlogServiceImpl) ListPublished(ctx context.Context) ([]api.Blog, error) {
	const op = "internal.service.blog.ListPublished"

	blogs, err := s.blogs.GetPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list published blogs: %w", op, err)
	}

	return toAPIBlogs(blogs), nil
}

// Update applies a partial edit. A status edit must name one of the known
// blog states.
func (s *BlogServiceImpl) Update(ctx context.Context, id string, payload BlogUpdatePayload) (*api.ModifyResult, error) {
	const op = "internal.service.blog.Update"

	if payload.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*payload.Status))
		if status != domain.BlogDraft && status != domain.BlogPublished {
			return nil, fmt.Errorf("%w: unknown blog status '%s'", apperrors.ErrInvalidRequest, *payload.Status)
		}

		payload.Status = &status
	}

	modified, err := s.blogs.Update(ctx, id, domain.BlogUpdate{
		Title:    payload.Title,
		Image:    payload.Image,
		Category: payload.Category,
		Content:  payload.Content,
		Status:   payload.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update blog: %w", op, err)
	}

	return &api.ModifyResult{ModifiedCount: modified}, nil
}

func (s *BlogServiceImpl) Delete(ctx context.Context, id string) (*api.DeleteResult, error) {
	const op = "internal.service.blog.Delete"

	deleted, err := s.blogs.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to delete blog: %w", op, err)
	}

	return &api.DeleteResult{DeletedCount: deleted}, nil
}

func toAPIBlog(blog *domain.Blog) *api.Blog {
	return &api.Blog{
		ID:        blog.ID,
		Title:     blog.Title,
		Image:     blog.Image,
		Category:  blog.Category,
		Content:   blog.Content,
		Status:    blog.Status,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

func toAPIBlogs(blogs []domain.Blog) []api.Blog {
	result := make([]api.Blog, len(blogs))
	for i := range blogs {
		result[i] = *toAPIBlog(&blogs[i])
	}

	return result
}
