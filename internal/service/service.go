// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrUnauthorized covers failed credential checks (maps to HTTP 401).
// Deliberately uniform for bad email and bad password alike.
var ErrUnauthorized = errors.New("unauthorized")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInputError exposes aggregated validation errors to the handler layer,
// which needs them for request-shape failures before the service is reached.
func NewInvalidInputError(fe []FieldError) error { return newInvalidInput(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// BookService defines catalog use cases.
type BookService interface {
	CreateBook(ctx context.Context, title, author, isbn string, quantity int) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, page repository.Page, search string) (repository.PageResult[model.Book], error)
	DeleteBook(ctx context.Context, id int64) error
}

// MemberService defines member-account use cases.
type MemberService interface {
	GetMember(ctx context.Context, id int64) (model.Member, error)
	ListMembers(ctx context.Context, page repository.Page) (repository.PageResult[model.Member], error)
}

// AuthService defines registration and credential-based token issuance.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (model.Member, error)
	// Login verifies credentials and returns a signed bearer token with the member.
	Login(ctx context.Context, email, password string) (string, model.Member, error)
}

// LoanService defines borrowing use cases.
type LoanService interface {
	BorrowBook(ctx context.Context, bookID, memberID int64) (model.Loan, error)
	ReturnLoan(ctx context.Context, loanID int64) (model.Loan, error)
	ListLoans(ctx context.Context, page repository.Page) (repository.PageResult[model.Loan], error)
	ListMemberLoans(ctx context.Context, memberID int64, page repository.Page) (repository.PageResult[model.Loan], error)
}
