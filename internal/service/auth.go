package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/model"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/token"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
	maxPasswordLength = 128
)

type authService struct {
	members repository.MemberRepository
	issuer  *token.Issuer
	log     zerolog.Logger
}

func NewAuthService(members repository.MemberRepository, issuer *token.Issuer, logger zerolog.Logger) AuthService {
	l := logger.With().Str("module", "service").Str("component", "auth").Logger()
	return &authService{members: members, issuer: issuer, log: l}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (model.Member, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	} else if ln := len([]rune(name)); ln < 2 || ln > 100 {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "length must be between 2 and 100"})
	}
	if !isValidEmail(email) {
		ferrs = append(ferrs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if ln := len(password); ln < minPasswordLength || ln > maxPasswordLength {
		ferrs = append(ferrs, FieldError{Field: "password", Message: "length must be between 8 and 128"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("email", email).Interface("field_errors", ferrs).Msg("register validation failed")
		return model.Member{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.Member{}, err
	}

	out, err := s.members.Create(ctx, model.Member{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "member",
	})
	if err != nil {
		// ErrAlreadyExists bubbles up for a duplicate email.
		s.log.Error().Err(err).Str("email", email).Msg("register member failed")
		return model.Member{}, err
	}
	s.log.Info().Int64("member_id", out.ID).Msg("member registered")
	return out, nil
}

// Login verifies credentials and mints a bearer token. A wrong email and a
// wrong password both return ErrUnauthorized so callers cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, model.Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", model.Member{}, ErrUnauthorized
	}

	member, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", model.Member{}, ErrUnauthorized
		}
		return "", model.Member{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		s.log.Debug().Str("email", email).Msg("password mismatch")
		return "", model.Member{}, ErrUnauthorized
	}

	signed, err := s.issuer.Issue(map[string]any{
		"member_id": member.ID,
		"email":     member.Email,
		"role":      member.Role,
	}, &token.Options{Subject: strconv.FormatInt(member.ID, 10)})
	if err != nil {
		s.log.Error().Err(err).Int64("member_id", member.ID).Msg("token issuance failed")
		return "", model.Member{}, err
	}

	s.log.Info().Int64("member_id", member.ID).Msg("member logged in")
	return signed, member, nil
}
