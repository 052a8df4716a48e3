package services

import (
	"context"
	"errors"
	"strings"

	"inventory-api/auth"
	"inventory-api/dto"
	"inventory-api/models"
	"inventory-api/repositories"
	"inventory-api/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks inventory-api/services Mailer

// Mailer delivers the password reset emails.
type Mailer interface {
	SendResetCode(to, name, token string) error
	SendResetConfirmation(to, name string) error
}

type AuthService struct {
	db        *gorm.DB
	users     *repositories.UserRepository
	resets    *repositories.PasswordResetRepository
	issuer    auth.TokenIssuer
	mailer    Mailer
	appEnv    string
	resetCode func() (string, error)
}

func NewAuthService(db *gorm.DB, issuer auth.TokenIssuer, mailer Mailer, appEnv string) *AuthService {
	return &AuthService{
		db:        db,
		users:     repositories.NewUserRepository(db),
		resets:    repositories.NewPasswordResetRepository(db),
		issuer:    issuer,
		mailer:    mailer,
		appEnv:    appEnv,
		resetCode: utils.ResetCode,
	}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	taken, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, InternalError("Registration failed", err)
	}
	if taken {
		return nil, ValidationError("The email has already been taken.")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, InternalError("Registration failed", err)
	}
	user := &models.User{Name: req.Name, Email: req.Email, Password: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, InternalError("Registration failed", err)
	}

	grant, err := s.issuer.Issue(ctx, *user, req.Password)
	if err != nil {
		return nil, InternalError("Could not issue token", err)
	}
	return &dto.AuthResponse{Token: grant, EmailVerifiedAt: user.EmailVerifiedAt, FName: user.Name}, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ValidationError("The selected email is invalid.")
	}
	if err != nil {
		return nil, InternalError("Login failed", err)
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, AuthError("Invalid credentials")
	}

	grant, err := s.issuer.Issue(ctx, *user, req.Password)
	if err != nil {
		return nil, InternalError("Could not issue token", err)
	}
	return &dto.AuthResponse{
		AppEnv:          s.appEnv,
		Token:           grant,
		EmailVerifiedAt: user.EmailVerifiedAt,
		FName:           user.Name,
	}, nil
}

// EmailUnique reports whether no user has registered email yet.
func (s *AuthService) EmailUnique(ctx context.Context, email string) (bool, error) {
	taken, err := s.users.EmailExists(ctx, strings.TrimSpace(email))
	if err != nil {
		return false, InternalError("Could not check email", err)
	}
	return !taken, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (string, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return "", err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", NotFoundError("User does not exist")
	}
	if err != nil {
		return "", InternalError("Error sending token", err)
	}

	code, err := s.resetCode()
	if err != nil {
		return "", InternalError("Error sending token", err)
	}
	if err := s.resets.Create(ctx, &models.PasswordReset{Email: user.Email, Token: code}); err != nil {
		return "", InternalError("Error sending token", err)
	}

	// the code stays stored even if the mail never leaves
	if err := s.mailer.SendResetCode(user.Email, user.Name, code); err != nil {
		return "", InternalError("Error sending token", err)
	}
	return "Token sent to " + user.Email, nil
}

func (s *AuthService) UpdatePassword(ctx context.Context, req dto.UpdatePasswordRequest) (string, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return "", err
	}

	ok, err := s.resets.Exists(ctx, req.Email, req.Token.String())
	if err != nil {
		return "", InternalError("Could not reset password", err)
	}
	if !ok {
		return "", InvalidTokenError("Invalid token")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", NotFoundError("User not found with that email")
	}
	if err != nil {
		return "", InternalError("Could not reset password", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", InternalError("Could not reset password", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).UpdatePassword(ctx, user.ID, hash); err != nil {
			return err
		}
		return s.resets.WithTx(tx).DeleteByEmail(ctx, user.Email)
	})
	if err != nil {
		return "", InternalError("Could not reset password", err)
	}

	if err := s.mailer.SendResetConfirmation(user.Email, user.Name); err != nil {
		log.Warn().Err(err).Uint("user_id", user.ID).Msg("password reset confirmation mail failed")
	}
	return "Password has been reset", nil
}
