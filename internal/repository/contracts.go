package repository

import (
	"context"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// BookRepository declares persistence operations for the catalog.
// I return domain models and surface domain errors from errors.go rather than PG codes.
type BookRepository interface {
	Create(ctx context.Context, b model.Book) (model.Book, error)
	GetByID(ctx context.Context, id int64) (model.Book, error)
	// List returns a page of books; a non-empty search narrows by title match.
	List(ctx context.Context, p Page, search string) (PageResult[model.Book], error)
	// AdjustAvailable changes the available-copy counter by delta and fails
	// with ErrConflict when the result would drop below zero.
	AdjustAvailable(ctx context.Context, id int64, delta int) error
	Delete(ctx context.Context, id int64) error
}

// MemberRepository declares persistence operations for member accounts.
type MemberRepository interface {
	Create(ctx context.Context, m model.Member) (model.Member, error)
	GetByID(ctx context.Context, id int64) (model.Member, error)
	GetByEmail(ctx context.Context, email string) (model.Member, error)
	List(ctx context.Context, p Page) (PageResult[model.Member], error)
}

// LoanRepository declares persistence operations for loans.
type LoanRepository interface {
	Create(ctx context.Context, l model.Loan) (model.Loan, error)
	GetByID(ctx context.Context, id int64) (model.Loan, error)
	// MarkReturned stamps the open loan as returned; ErrConflict if already closed.
	MarkReturned(ctx context.Context, id int64) (model.Loan, error)
	List(ctx context.Context, p Page) (PageResult[model.Loan], error)
	ListByMember(ctx context.Context, memberID int64, p Page) (PageResult[model.Loan], error)
}
