package service

import (
	"context"
	"errors"

	dom "todoapi/internal/domain"
	"todoapi/internal/repo"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("not found")

// TodoService forwards to the repository. Field validation happens at the
// API boundary; the only translation done here is pgx.ErrNoRows -> ErrNotFound
// so handlers never see a driver error.
type TodoService struct {
	repo repo.TodoRepo
}

func NewTodoService(r repo.TodoRepo) *TodoService {
	return &TodoService{repo: r}
}

func (s *TodoService) Create(ctx context.Context, title, description string) (dom.Todo, error) {
	return s.repo.Create(ctx, dom.Todo{
		Title:       title,
		Description: description,
	})
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Todo{}, notFoundOr(err)
	}
	return t, nil
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	return s.repo.List(ctx)
}

func (s *TodoService) Search(ctx context.Context, term string, page dom.SearchPage) ([]dom.Todo, error) {
	return s.repo.Search(ctx, term, page)
}

func (s *TodoService) Update(ctx context.Context, id int64, title, description string) (dom.Todo, error) {
	t, err := s.repo.Update(ctx, dom.Todo{
		ID:          id,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return dom.Todo{}, notFoundOr(err)
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.Delete(ctx, id)
	if err != nil {
		return dom.Todo{}, notFoundOr(err)
	}
	return t, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
