package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
)

const (
	minTitleLen = 1
	maxTitleLen = 200
	maxCopies   = 1000
)

// bookService holds catalog use-case logic: validation + orchestration, no transport / SQL details.
type bookService struct {
	repo repository.BookRepository
	log  zerolog.Logger
}

func NewBookService(repo repository.BookRepository, logger zerolog.Logger) BookService {
	l := logger.With().Str("module", "service").Str("component", "book").Logger()
	return &bookService{repo: repo, log: l}
}

func (s *bookService) CreateBook(ctx context.Context, title, author, isbn string, quantity int) (model.Book, error) {
	start := time.Now()
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	isbn = strings.TrimSpace(isbn)

	var ferrs []FieldError
	if title == "" {
		ferrs = append(ferrs, FieldError{Field: "title", Message: "must not be empty"})
	} else if ln := len([]rune(title)); ln < minTitleLen || ln > maxTitleLen {
		ferrs = append(ferrs, FieldError{Field: "title", Message: "length must be between 1 and 200"})
	}
	if author == "" {
		ferrs = append(ferrs, FieldError{Field: "author", Message: "must not be empty"})
	}
	if !isValidISBN(isbn) {
		ferrs = append(ferrs, FieldError{Field: "isbn", Message: "must be a valid ISBN-10 or ISBN-13"})
	}
	if quantity < 1 || quantity > maxCopies {
		ferrs = append(ferrs, FieldError{Field: "quantity", Message: "must be between 1 and 1000"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("title_raw", title).Interface("field_errors", ferrs).Msg("book validation failed")
		return model.Book{}, err
	}

	out, err := s.repo.Create(ctx, model.Book{Title: title, Author: author, ISBN: isbn, Quantity: quantity})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("isbn", isbn).Msg("create book failed")
		return model.Book{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("book_id", out.ID).Msg("book created")
	return out, nil
}

func (s *bookService) GetBook(ctx context.Context, id int64) (model.Book, error) {
	if id <= 0 {
		return model.Book{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) ListBooks(ctx context.Context, page repository.Page, search string) (repository.PageResult[model.Book], error) {
	res, err := s.repo.List(ctx, page, strings.TrimSpace(search))
	if err != nil {
		s.log.Error().Err(err).Int("limit", page.Limit).Int("offset", page.Offset).Msg("list books failed")
		return repository.PageResult[model.Book]{}, err
	}
	return res, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	if id <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("book_id", id).Msg("delete book failed")
		return err
	}
	s.log.Info().Int64("book_id", id).Msg("book deleted")
	return nil
}
