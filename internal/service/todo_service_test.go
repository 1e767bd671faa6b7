package service

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "todoapi/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo lets each test swap in exactly the behavior it needs.
type fakeRepo struct {
	createFn func(ctx context.Context, t dom.Todo) (dom.Todo, error)
	getFn    func(ctx context.Context, id int64) (dom.Todo, error)
	listFn   func(ctx context.Context) ([]dom.Todo, error)
	searchFn func(ctx context.Context, term string, page dom.SearchPage) ([]dom.Todo, error)
	updateFn func(ctx context.Context, t dom.Todo) (dom.Todo, error)
	deleteFn func(ctx context.Context, id int64) (dom.Todo, error)
}

func (f *fakeRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	return f.createFn(ctx, t)
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	return f.getFn(ctx, id)
}

func (f *fakeRepo) List(ctx context.Context) ([]dom.Todo, error) {
	return f.listFn(ctx)
}

func (f *fakeRepo) Search(ctx context.Context, term string, page dom.SearchPage) ([]dom.Todo, error) {
	return f.searchFn(ctx, term, page)
}

func (f *fakeRepo) Update(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	return f.updateFn(ctx, t)
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (dom.Todo, error) {
	return f.deleteFn(ctx, id)
}

func TestCreatePassesFieldsVerbatim(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var got dom.Todo
	repo := &fakeRepo{
		createFn: func(ctx context.Context, in dom.Todo) (dom.Todo, error) {
			got = in
			in.ID = 1
			in.CreationTime = now
			in.ModificationTime = now
			return in, nil
		},
	}
	svc := NewTodoService(repo)

	out, err := svc.Create(context.Background(), "  title  ", "description")

	require.NoError(t, err)
	// no trimming or rewriting on the way down
	assert.Equal(t, "  title  ", got.Title)
	assert.Equal(t, "description", got.Description)
	assert.Zero(t, got.ID)
	assert.Equal(t, int64(1), out.ID)
	assert.True(t, out.CreationTime.Equal(out.ModificationTime))
}

func TestGetByIDTranslatesNoRows(t *testing.T) {
	repo := &fakeRepo{
		getFn: func(ctx context.Context, id int64) (dom.Todo, error) {
			return dom.Todo{}, pgx.ErrNoRows
		},
	}
	svc := NewTodoService(repo)

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDKeepsOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &fakeRepo{
		getFn: func(ctx context.Context, id int64) (dom.Todo, error) {
			return dom.Todo{}, boom
		},
	}
	svc := NewTodoService(repo)

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestUpdateTranslatesNoRows(t *testing.T) {
	repo := &fakeRepo{
		updateFn: func(ctx context.Context, in dom.Todo) (dom.Todo, error) {
			return dom.Todo{}, pgx.ErrNoRows
		},
	}
	svc := NewTodoService(repo)

	_, err := svc.Update(context.Background(), 42, "valid title", "valid description")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateForwardsIDAndFields(t *testing.T) {
	var got dom.Todo
	repo := &fakeRepo{
		updateFn: func(ctx context.Context, in dom.Todo) (dom.Todo, error) {
			got = in
			return in, nil
		},
	}
	svc := NewTodoService(repo)

	_, err := svc.Update(context.Background(), 7, "t2", "d2")

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "t2", got.Title)
	assert.Equal(t, "d2", got.Description)
}

func TestDeleteTranslatesNoRows(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id int64) (dom.Todo, error) {
			return dom.Todo{}, pgx.ErrNoRows
		},
	}
	svc := NewTodoService(repo)

	_, err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReturnsPreDeleteRecord(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id int64) (dom.Todo, error) {
			return dom.Todo{ID: id, Title: "was here"}, nil
		},
	}
	svc := NewTodoService(repo)

	out, err := svc.Delete(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, int64(4), out.ID)
	assert.Equal(t, "was here", out.Title)
}

func TestSearchPassesThrough(t *testing.T) {
	page := dom.SearchPage{PageNumber: 1, PageSize: 5, SortField: "title", SortOrder: "ASC"}
	repo := &fakeRepo{
		searchFn: func(ctx context.Context, term string, p dom.SearchPage) ([]dom.Todo, error) {
			assert.Equal(t, "it", term)
			assert.Equal(t, page, p)
			return []dom.Todo{{ID: 1}}, nil
		},
	}
	svc := NewTodoService(repo)

	out, err := svc.Search(context.Background(), "it", page)

	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestListPassesThrough(t *testing.T) {
	repo := &fakeRepo{
		listFn: func(ctx context.Context) ([]dom.Todo, error) {
			return []dom.Todo{{ID: 1}, {ID: 2}}, nil
		},
	}
	svc := NewTodoService(repo)

	out, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, out, 2)
}
