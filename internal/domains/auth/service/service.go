package service

import (
	"context"
	"fmt"

	"resort/infras/jwt"
	"resort/infras/otel"
	"resort/internal/domains/auth/model/dto"
	staffModel "resort/internal/domains/staff/model"
	staffDto "resort/internal/domains/staff/model/dto"
	staffRepo "resort/internal/domains/staff/repository"
	staffService "resort/internal/domains/staff/service"
	"resort/shared"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/shared/password"
	"resort/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	messageInvalidCredentials = "invalid email or password"
	messageInactiveAccount    = "staff account is deactivated"
)

type Auth interface {
	Register(ctx context.Context, req staffDto.CreateStaffRequest) (string, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	repo  staffRepo.Staff
	staff staffService.Staff
	jwt   jwt.JWT
	otel  otel.Otel
}

func New(repo staffRepo.Staff, staff staffService.Staff, jwt jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		repo:  repo,
		staff: staff,
		jwt:   jwt,
		otel:  otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req staffDto.CreateStaffRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.staff.Create(ctx, req) //nolint:wrapcheck
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(req.Email, staffModel.FieldEmail, staffModel.TableName)

	staff, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized(messageInvalidCredentials) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, staff.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(messageInvalidCredentials) // nolint:wrapcheck
	}

	if !staff.Active {
		return res, failure.Forbidden(messageInactiveAccount) // nolint:wrapcheck
	}

	pair, err := s.jwt.GenerateTokenPair(staff.ID, staff.Email, staff.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err = s.repo.Update(ctx, shared.TransformFields(dto.LastLogin{LastLogin: timezone.Now()}, staff.ID), filter); err != nil {
		log.Warn().Err(err).Str("staff_id", staff.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pair, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	staffID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(staffID, staffModel.FieldID, staffModel.TableName)

	staff, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		return failure.NotFound("staff not found") // nolint:wrapcheck
	}

	if err = password.Verify(req.CurrentPassword, staff.Password); err != nil {
		return failure.Validation("current password is incorrect") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err = s.repo.Update(ctx, shared.TransformFields(dto.UpdatePassword{Password: hashed}, staffID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
