package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
)

// loanPeriod is how long a borrowed copy may stay out before it is due.
const loanPeriod = 14 * 24 * time.Hour

type loanService struct {
	loans   repository.LoanRepository
	books   repository.BookRepository
	members repository.MemberRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewLoanService(loans repository.LoanRepository, books repository.BookRepository, members repository.MemberRepository, tx repository.TxManager, logger zerolog.Logger) LoanService {
	l := logger.With().Str("module", "service").Str("component", "loan").Logger()
	return &loanService{loans: loans, books: books, members: members, tx: tx, log: l}
}

// BorrowBook checks both parties exist, then decrements availability and
// records the loan inside one transaction so a copy can never be lent twice.
func (s *loanService) BorrowBook(ctx context.Context, bookID, memberID int64) (model.Loan, error) {
	var ferrs []FieldError
	if bookID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "book_id", Message: "must be > 0"})
	}
	if memberID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "member_id", Message: "must be > 0"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("borrow validation failed (structure)")
		return model.Loan{}, err
	}

	// Existence checks before attempting persistence.
	var existenceErrs []FieldError
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			existenceErrs = append(existenceErrs, FieldError{Field: "book_id", Message: "book does not exist"})
		} else {
			return model.Loan{}, err
		}
	}
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			existenceErrs = append(existenceErrs, FieldError{Field: "member_id", Message: "member does not exist"})
		} else {
			return model.Loan{}, err
		}
	}
	if err := newInvalidInput(existenceErrs); err != nil {
		s.log.Debug().Interface("field_errors", existenceErrs).Msg("borrow validation failed (existence)")
		return model.Loan{}, err
	}

	now := time.Now()
	var out model.Loan
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// The availability guard lives in the repository; ErrConflict here
		// means no copies are on the shelf.
		if err := s.books.AdjustAvailable(ctx, bookID, -1); err != nil {
			return err
		}
		created, err := s.loans.Create(ctx, model.Loan{
			BookID:     bookID,
			MemberID:   memberID,
			BorrowedAt: now,
			DueAt:      now.Add(loanPeriod),
		})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int64("book_id", bookID).Int64("member_id", memberID).Msg("borrow failed")
		return model.Loan{}, err
	}
	s.log.Info().Int64("loan_id", out.ID).Int64("book_id", bookID).Int64("member_id", memberID).Msg("book borrowed")
	return out, nil
}

// ReturnLoan closes the loan and restores the copy to the shelf in one transaction.
func (s *loanService) ReturnLoan(ctx context.Context, loanID int64) (model.Loan, error) {
	if loanID <= 0 {
		return model.Loan{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}

	var out model.Loan
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		returned, err := s.loans.MarkReturned(ctx, loanID)
		if err != nil {
			return err
		}
		if err := s.books.AdjustAvailable(ctx, returned.BookID, +1); err != nil {
			return err
		}
		out = returned
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int64("loan_id", loanID).Msg("return failed")
		return model.Loan{}, err
	}
	s.log.Info().Int64("loan_id", out.ID).Int64("book_id", out.BookID).Msg("book returned")
	return out, nil
}

func (s *loanService) ListLoans(ctx context.Context, page repository.Page) (repository.PageResult[model.Loan], error) {
	res, err := s.loans.List(ctx, page)
	if err != nil {
		s.log.Error().Err(err).Int("limit", page.Limit).Int("offset", page.Offset).Msg("list loans failed")
		return repository.PageResult[model.Loan]{}, err
	}
	return res, nil
}

func (s *loanService) ListMemberLoans(ctx context.Context, memberID int64, page repository.Page) (repository.PageResult[model.Loan], error) {
	if memberID <= 0 {
		return repository.PageResult[model.Loan]{}, newInvalidInput([]FieldError{{Field: "member_id", Message: "must be > 0"}})
	}
	res, err := s.loans.ListByMember(ctx, memberID, page)
	if err != nil {
		s.log.Error().Err(err).Int64("member_id", memberID).Msg("list member loans failed")
		return repository.PageResult[model.Loan]{}, err
	}
	return res, nil
}
