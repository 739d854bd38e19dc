package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
)

type bookRepository struct{ pool *pgxpool.Pool }

func NewBookRepository(pool *pgxpool.Pool) repository.BookRepository {
	return &bookRepository{pool: pool}
}

func (r *bookRepository) Create(ctx context.Context, b model.Book) (model.Book, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Book{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO books (title, author, isbn, quantity, available)
		 VALUES ($1, $2, $3, $4, $4)
		 RETURNING id, title, author, isbn, quantity, available, created_at, updated_at`,
		b.Title, b.Author, b.ISBN, b.Quantity,
	)
	var out model.Book
	if err := row.Scan(&out.ID, &out.Title, &out.Author, &out.ISBN, &out.Quantity, &out.Available, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Book{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (model.Book, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Book{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, title, author, isbn, quantity, available, created_at, updated_at
		 FROM books WHERE id = $1`, id,
	)
	var out model.Book
	if err := row.Scan(&out.ID, &out.Title, &out.Author, &out.ISBN, &out.Quantity, &out.Available, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, repository.ErrNotFound
		}
		return model.Book{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *bookRepository) List(ctx context.Context, p repository.Page, search string) (repository.PageResult[model.Book], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Book]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, title, author, isbn, quantity, available, created_at, updated_at,
		        COUNT(*) OVER() AS total
		 FROM books
		 WHERE $3 = '' OR title ILIKE '%' || $3 || '%'
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset, search,
	)
	if err != nil {
		return repository.PageResult[model.Book]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Book]{Items: make([]model.Book, 0, limit)}
	for rows.Next() {
		var b model.Book
		var total int
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Quantity, &b.Available, &b.CreatedAt, &b.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Book]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, b)
		res.Total = total
	}
	return res, nil
}

// AdjustAvailable moves the available counter by delta. The WHERE clause keeps
// the counter inside [0, quantity], so an impossible move updates zero rows.
func (r *bookRepository) AdjustAvailable(ctx context.Context, id int64, delta int) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx,
		`UPDATE books
		 SET available = available + $2, updated_at = NOW()
		 WHERE id = $1 AND available + $2 >= 0 AND available + $2 <= quantity`,
		id, delta,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		// Either the book is gone or the counter would leave its bounds.
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return repository.ErrNotFound
		}
		return repository.ErrConflict
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *bookRepository) exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	exec := getQ(ctx, r.pool)
	err := exec.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

var _ repository.BookRepository = (*bookRepository)(nil)
