package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
)

type memberRepository struct{ pool *pgxpool.Pool }

func NewMemberRepository(pool *pgxpool.Pool) repository.MemberRepository {
	return &memberRepository{pool: pool}
}

func (r *memberRepository) Create(ctx context.Context, m model.Member) (model.Member, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Member{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO members (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, email, password_hash, role, created_at, updated_at`,
		m.Name, m.Email, m.PasswordHash, m.Role,
	)
	var out model.Member
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.Role, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Member{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (model.Member, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Member{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at
		 FROM members WHERE id = $1`, id,
	)
	var out model.Member
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.Role, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Member{}, repository.ErrNotFound
		}
		return model.Member{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (model.Member, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Member{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at
		 FROM members WHERE email = $1`, email,
	)
	var out model.Member
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.Role, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Member{}, repository.ErrNotFound
		}
		return model.Member{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *memberRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Member], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Member]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at,
		        COUNT(*) OVER() AS total
		 FROM members
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Member]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Member]{Items: make([]model.Member, 0, limit)}
	for rows.Next() {
		var m model.Member
		var total int
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.Role, &m.CreatedAt, &m.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Member]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, m)
		res.Total = total
	}
	return res, nil
}

var _ repository.MemberRepository = (*memberRepository)(nil)
