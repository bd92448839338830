package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/converter"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/dto"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is deactivated")
	ErrRoleNotAssigned    = errors.New("role is not assigned to this user")
)

// AuthProvider is the slice of the backend client the auth flow needs
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (json.RawMessage, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID, accessTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) (*dto.TokenResponse, error)
	SwitchRole(ctx context.Context, userID, tokenID string, req *dto.SwitchRoleRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID string) (*entity.User, error)
	ListUsers(ctx context.Context, role entity.Role) ([]entity.User, error)
}

type authUsecase struct {
	log         *logrus.Logger
	provider    AuthProvider
	userRepo    repository.UserRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	log *logrus.Logger,
	provider AuthProvider,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		provider:    provider,
		userRepo:    userRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func identityFor(user *entity.User, activeRole entity.Role) jwt.Identity {
	roles := make([]string, 0, len(user.Roles)+1)
	roles = append(roles, string(user.Role))
	for _, r := range user.Roles {
		if r != user.Role {
			roles = append(roles, string(r))
		}
	}
	return jwt.Identity{
		UserID:             user.ID,
		Email:              user.Email,
		ActiveRole:         string(activeRole),
		Roles:              roles,
		MustChangePassword: user.MustChangePassword,
	}
}

// issueTokens mints and stores an access/refresh token pair
func (u *authUsecase) issueTokens(ctx context.Context, identity jwt.Identity) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(identity)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(identity)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", identity.UserID, accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", identity.UserID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:        accessToken,
		RefreshToken:       refreshToken,
		ExpiresIn:          int64(u.jwtService.GetAccessExpiry().Seconds()),
		Role:               identity.ActiveRole,
		Roles:              identity.Roles,
		MustChangePassword: identity.MustChangePassword,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	raw, err := u.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, backend.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Sign-in against auth provider failed: %+v", err)
		return nil, err
	}

	user, err := converter.UserFromDocument(raw)
	if err != nil {
		u.log.Warnf("Failed to decode user document: %+v", err)
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return u.issueTokens(ctx, identityFor(user, user.Role))
}

func (u *authUsecase) Logout(ctx context.Context, userID, accessTokenID string) error {
	accessKey := fmt.Sprintf("access_token:%s:%s", userID, accessTokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Single use: the old refresh token dies with the rotation.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	// Re-read the user so role or password-flag changes take effect on
	// rotation.
	user, err := u.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user %s: %+v", claims.UserID, err)
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	activeRole := entity.Role(claims.ActiveRole)
	if !user.HasRole(activeRole) {
		activeRole = user.Role
	}

	return u.issueTokens(ctx, identityFor(user, activeRole))
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) (*dto.TokenResponse, error) {
	if err := u.provider.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, backend.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Password change against auth provider failed: %+v", err)
		return nil, err
	}

	// Other sessions are revoked; the provider has already cleared the
	// must_change_password flag.
	if err := u.revokeAllUserTokens(ctx, userID); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}

	// The repo may hand back a cache-shared pointer; override the flag on
	// the identity, never on the user itself.
	identity := identityFor(user, user.Role)
	identity.MustChangePassword = false

	return u.issueTokens(ctx, identity)
}

func (u *authUsecase) SwitchRole(ctx context.Context, userID, tokenID string, req *dto.SwitchRoleRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}

	requested := entity.Role(req.Role)
	if !user.HasRole(requested) {
		return nil, ErrRoleNotAssigned
	}

	// The old access token is retired; no re-authentication happens.
	if err := u.Logout(ctx, userID, tokenID); err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, identityFor(user, requested))
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	return user, nil
}

// ListUsers returns the staff directory, optionally narrowed to one role
// (the doctor picker on the appointment form queries role=doctor).
func (u *authUsecase) ListUsers(ctx context.Context, role entity.Role) ([]entity.User, error) {
	var (
		users []entity.User
		err   error
	)
	if role != "" {
		users, err = u.userRepo.FindByRole(ctx, role)
	} else {
		users, err = u.userRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	return users, nil
}

func (u *authUsecase) revokeAllUserTokens(ctx context.Context, userID string) error {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:%s:*", userID),
		fmt.Sprintf("refresh_token:%s:*", userID),
	} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}
	return nil
}
