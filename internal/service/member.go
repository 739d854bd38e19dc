package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
)

type memberService struct {
	repo repository.MemberRepository
	log  zerolog.Logger
}

func NewMemberService(repo repository.MemberRepository, logger zerolog.Logger) MemberService {
	l := logger.With().Str("module", "service").Str("component", "member").Logger()
	return &memberService{repo: repo, log: l}
}

func (s *memberService) GetMember(ctx context.Context, id int64) (model.Member, error) {
	if id <= 0 {
		return model.Member{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *memberService) ListMembers(ctx context.Context, page repository.Page) (repository.PageResult[model.Member], error) {
	res, err := s.repo.List(ctx, page)
	if err != nil {
		s.log.Error().Err(err).Int("limit", page.Limit).Int("offset", page.Offset).Msg("list members failed")
		return repository.PageResult[model.Member]{}, err
	}
	return res, nil
}
