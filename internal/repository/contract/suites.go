// Package contract holds reusable repository test suites. Any implementation
// of the repository interfaces (postgres today, maybe others later) can be
// run through the same behavioral checks.
package contract

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
)

type BookFactory func(t *testing.T) (repository.BookRepository, func())

type MemberFactory func(t *testing.T) (repository.MemberRepository, func())

type LoanFactory func(t *testing.T) (repo repository.LoanRepository, mkBook func(ctx context.Context) (int64, error), mkMember func(ctx context.Context) (int64, error), cleanup func())

type TxFactory func(t *testing.T) (tx repository.TxManager, books repository.BookRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func testBook(i int) model.Book {
	return model.Book{
		Title:    fmt.Sprintf("Book %c", 'A'+i),
		Author:   "Author",
		ISBN:     fmt.Sprintf("978000000%04d", i),
		Quantity: 3,
	}
}

func newOpenLoan(bookID, memberID int64) model.Loan {
	now := time.Now().UTC()
	return model.Loan{BookID: bookID, MemberID: memberID, BorrowedAt: now, DueAt: now.Add(14 * 24 * time.Hour)}
}

func RunBookRepositoryContract(t *testing.T, makeRepo BookFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, testBook(0))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.Available != created.Quantity {
			t.Fatalf("new book should start fully available: %+v", created)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.ISBN != created.ISBN {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			if _, err := repo.Create(ctx, testBook(i)); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0}, "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		res2, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6}, "")
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 7 {
			t.Fatalf("unexpected page2: len=%d total=%d", len(res2.Items), res2.Total)
		}
	})

	t.Run("list_title_search", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		seed := testBook(0)
		seed.Title = "The Go Programming Language"
		if _, err := repo.Create(ctx, seed); err != nil {
			t.Fatalf("seed: %v", err)
		}
		other := testBook(1)
		other.Title = "SQL for Mortals"
		if _, err := repo.Create(ctx, other); err != nil {
			t.Fatalf("seed: %v", err)
		}
		res, err := repo.List(ctx, repository.Page{Limit: 10, Offset: 0}, "go programming")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 || len(res.Items) != 1 {
			t.Fatalf("expected one match, got total=%d", res.Total)
		}
	})

	t.Run("create_duplicate_isbn_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, testBook(0)); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, testBook(0))
		if err == nil || err != repository.ErrAlreadyExists {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("adjust_available_bounds", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		b, err := repo.Create(ctx, testBook(0)) // quantity 3
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		for i := 0; i < 3; i++ {
			if err := repo.AdjustAvailable(ctx, b.ID, -1); err != nil {
				t.Fatalf("decrement %d: %v", i, err)
			}
		}
		if err := repo.AdjustAvailable(ctx, b.ID, -1); err != repository.ErrConflict {
			t.Fatalf("expected ErrConflict when shelf is empty, got %v", err)
		}
		if err := repo.AdjustAvailable(ctx, b.ID, +1); err != nil {
			t.Fatalf("restore: %v", err)
		}
		if err := repo.AdjustAvailable(ctx, 9999999, -1); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound for missing book, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		b, err := repo.Create(ctx, testBook(0))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := repo.Delete(ctx, b.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := repo.Delete(ctx, b.ID); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func RunMemberRepositoryContract(t *testing.T, makeRepo MemberFactory) {
	t.Helper()

	t.Run("create_get_by_id_and_email", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Member{Name: "Ada", Email: "ada@example.com", PasswordHash: "x", Role: "member"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		byID, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get by id: %v", err)
		}
		byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
		if err != nil {
			t.Fatalf("get by email: %v", err)
		}
		if byID.ID != byEmail.ID {
			t.Fatalf("id/email lookups disagree: %+v vs %+v", byID, byEmail)
		}
	})

	t.Run("duplicate_email_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		m := model.Member{Name: "Dup", Email: "dup@example.com", PasswordHash: "x", Role: "member"}
		if _, err := repo.Create(ctx, m); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, m)
		if err == nil || err != repository.ErrAlreadyExists {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		if _, err := repo.GetByID(context.Background(), 424242); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if _, err := repo.GetByEmail(context.Background(), "ghost@example.com"); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunLoanRepositoryContract(t *testing.T, makeRepo LoanFactory) {
	t.Helper()

	t.Run("create_get_return", func(t *testing.T) {
		repo, mkBook, mkMember, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		bookID, err := mkBook(ctx)
		if err != nil {
			t.Fatalf("seed book: %v", err)
		}
		memberID, err := mkMember(ctx)
		if err != nil {
			t.Fatalf("seed member: %v", err)
		}
		created, err := repo.Create(ctx, newOpenLoan(bookID, memberID))
		if err != nil {
			t.Fatalf("create loan: %v", err)
		}
		if created.ReturnedAt != nil {
			t.Fatalf("fresh loan should be open: %+v", created)
		}
		returned, err := repo.MarkReturned(ctx, created.ID)
		if err != nil {
			t.Fatalf("return: %v", err)
		}
		if returned.ReturnedAt == nil {
			t.Fatalf("returned loan should carry a timestamp: %+v", returned)
		}
		if _, err := repo.MarkReturned(ctx, created.ID); err != repository.ErrConflict {
			t.Fatalf("expected ErrConflict on double return, got %v", err)
		}
	})

	t.Run("create_fk_violation_conflict", func(t *testing.T) {
		repo, _, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Create(context.Background(), newOpenLoan(9999999, 9999999))
		if err == nil || err != repository.ErrConflict {
			t.Fatalf("expected ErrConflict on FK violation, got %v", err)
		}
	})

	t.Run("list_by_member_pagination", func(t *testing.T) {
		repo, mkBook, mkMember, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		bookID, _ := mkBook(ctx)
		memberID, _ := mkMember(ctx)
		for i := 0; i < 5; i++ {
			if _, err := repo.Create(ctx, newOpenLoan(bookID, memberID)); err != nil {
				t.Fatalf("seed loan %d: %v", i, err)
			}
		}
		res, err := repo.ListByMember(ctx, memberID, repository.Page{Limit: 2, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 2 || res.Total != 5 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		if _, err := repo.GetByID(context.Background(), 7777777); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, books, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		sentinel := fmt.Errorf("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := books.Create(ctx, testBook(0)); err != nil {
				return err
			}
			return sentinel
		})
		if err == nil {
			t.Fatalf("expected error to propagate")
		}
		res, err := books.List(ctx, repository.Page{Limit: 10, Offset: 0}, "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 0 {
			t.Fatalf("rollback leaked %d rows", res.Total)
		}
	})

	t.Run("commit_on_success", func(t *testing.T) {
		tx, books, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			_, err := books.Create(ctx, testBook(1))
			return err
		})
		if err != nil {
			t.Fatalf("tx: %v", err)
		}
		res, err := books.List(ctx, repository.Page{Limit: 10, Offset: 0}, "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 {
			t.Fatalf("expected committed row, total=%d", res.Total)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	p, cleanup := makePinger(t)
	t.Cleanup(cleanup)
	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
