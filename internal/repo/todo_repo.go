package repo

import (
	"context"
	"strings"

	"todoapi/internal/clock"
	dom "todoapi/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id int64) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	Search(ctx context.Context, term string, page dom.SearchPage) ([]dom.Todo, error)
	Update(ctx context.Context, t dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, id int64) (dom.Todo, error)
}

// COALESCE keeps a NULL description from failing the string scan.
const todoColumns = `id, title, COALESCE(description, ''), creation_time, modification_time`

// sortColumns whitelists the sort fields a caller may pass; anything
// else leaves the result unsorted.
var sortColumns = map[string]string{
	"id":                "id",
	"title":             "title",
	"creationTime":      "creation_time",
	"creation_time":     "creation_time",
	"modificationTime":  "modification_time",
	"modification_time": "modification_time",
}

type PGTodoRepo struct {
	db    *pgxpool.Pool
	clock clock.Clock
}

func NewPGTodoRepo(db *pgxpool.Pool, c clock.Clock) *PGTodoRepo {
	return &PGTodoRepo{db: db, clock: c}
}

// Create stamps both timestamps with the current time and inserts the row.
func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	now := r.clock.Now()
	query := `
		INSERT INTO todos (title, description, creation_time, modification_time)
		VALUES ($1, $2, $3, $3)
		RETURNING ` + todoColumns
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, t.Title, t.Description, now).Scan(
		&out.ID, &out.Title, &out.Description, &out.CreationTime, &out.ModificationTime,
	)
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.CreationTime, &t.ModificationTime,
	)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.CreationTime, &t.ModificationTime); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Search returns the page of rows whose title or description contains term,
// case-insensitively. No total count is computed.
func (r *PGTodoRepo) Search(ctx context.Context, term string, page dom.SearchPage) ([]dom.Todo, error) {
	pattern := "%" + term + "%"
	query := `
		SELECT ` + todoColumns + `
		FROM todos WHERE title ILIKE $1 OR description ILIKE $1` +
		orderClause(page) + `
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, pattern, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.CreationTime, &t.ModificationTime); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update replaces title and description and refreshes modification_time.
// The existence check and the update run in one transaction so a concurrent
// delete surfaces as pgx.ErrNoRows rather than a silent zero-row update.
func (r *PGTodoRepo) Update(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Todo{}, err
	}
	defer tx.Rollback(ctx)

	var id int64
	if err := tx.QueryRow(ctx, `SELECT id FROM todos WHERE id = $1 FOR UPDATE`, t.ID).Scan(&id); err != nil {
		return dom.Todo{}, err
	}

	query := `
		UPDATE todos SET title = $2, description = $3, modification_time = $4
		WHERE id = $1
		RETURNING ` + todoColumns
	var out dom.Todo
	if err := tx.QueryRow(ctx, query, t.ID, t.Title, t.Description, r.clock.Now()).Scan(
		&out.ID, &out.Title, &out.Description, &out.CreationTime, &out.ModificationTime,
	); err != nil {
		return dom.Todo{}, err
	}
	return out, tx.Commit(ctx)
}

// Delete removes the row and returns it as it existed before deletion.
// Read and delete share a transaction for the same reason as Update.
func (r *PGTodoRepo) Delete(ctx context.Context, id int64) (dom.Todo, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Todo{}, err
	}
	defer tx.Rollback(ctx)

	var t dom.Todo
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.CreationTime, &t.ModificationTime,
	); err != nil {
		return dom.Todo{}, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id); err != nil {
		return dom.Todo{}, err
	}
	return t, tx.Commit(ctx)
}

func orderClause(p dom.SearchPage) string {
	col, ok := sortColumns[p.SortField]
	if !ok {
		return ""
	}
	dir := "ASC"
	if strings.EqualFold(p.SortOrder, "DESC") {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir
}
