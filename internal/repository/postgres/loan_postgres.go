package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
)

type loanRepository struct{ pool *pgxpool.Pool }

func NewLoanRepository(pool *pgxpool.Pool) repository.LoanRepository {
	return &loanRepository{pool: pool}
}

const loanColumns = `id, book_id, member_id, borrowed_at, due_at, returned_at, created_at, updated_at`

func scanLoan(row pgx.Row) (model.Loan, error) {
	var l model.Loan
	err := row.Scan(&l.ID, &l.BookID, &l.MemberID, &l.BorrowedAt, &l.DueAt, &l.ReturnedAt, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *loanRepository) Create(ctx context.Context, l model.Loan) (model.Loan, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Loan{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO loans (book_id, member_id, borrowed_at, due_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+loanColumns,
		l.BookID, l.MemberID, l.BorrowedAt, l.DueAt,
	)
	out, err := scanLoan(row)
	if err != nil {
		return model.Loan{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *loanRepository) GetByID(ctx context.Context, id int64) (model.Loan, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Loan{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1`, id)
	out, err := scanLoan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, repository.ErrNotFound
		}
		return model.Loan{}, repository.MapPgError(err)
	}
	return out, nil
}

// MarkReturned closes an open loan. The returned_at IS NULL guard makes a
// double return show up as zero affected rows, reported as ErrConflict.
func (r *loanRepository) MarkReturned(ctx context.Context, id int64) (model.Loan, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Loan{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE loans
		 SET returned_at = NOW(), updated_at = NOW()
		 WHERE id = $1 AND returned_at IS NULL
		 RETURNING `+loanColumns,
		id,
	)
	out, err := scanLoan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing loan from one already closed.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return model.Loan{}, getErr
			}
			return model.Loan{}, repository.ErrConflict
		}
		return model.Loan{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *loanRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Loan], error) {
	return r.list(ctx, p, 0)
}

func (r *loanRepository) ListByMember(ctx context.Context, memberID int64, p repository.Page) (repository.PageResult[model.Loan], error) {
	return r.list(ctx, p, memberID)
}

// list serves both the global and per-member listings; memberID 0 means all.
func (r *loanRepository) list(ctx context.Context, p repository.Page, memberID int64) (repository.PageResult[model.Loan], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Loan]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+loanColumns+`, COUNT(*) OVER() AS total
		 FROM loans
		 WHERE $3 = 0 OR member_id = $3
		 ORDER BY id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset, memberID,
	)
	if err != nil {
		return repository.PageResult[model.Loan]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Loan]{Items: make([]model.Loan, 0, limit)}
	for rows.Next() {
		var l model.Loan
		var total int
		if err := rows.Scan(&l.ID, &l.BookID, &l.MemberID, &l.BorrowedAt, &l.DueAt, &l.ReturnedAt, &l.CreatedAt, &l.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Loan]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, l)
		res.Total = total
	}
	return res, nil
}

var _ repository.LoanRepository = (*loanRepository)(nil)
