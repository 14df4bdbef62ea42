package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"blog-api/pkg/apperr"
	"blog-api/pkg/jwt"
	"blog-api/pkg/logger"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

var (
	ErrUnknownCredentials = apperr.NotFound("A user with this credentials does not exist.")
	ErrAccountLocked      = apperr.Conflict("Your account has been disabled by an administrator.")
	ErrInvalidCredentials = apperr.Conflict("The password you entered is incorrect")
	ErrUsernameTaken      = apperr.Conflict("Username is already taken")
	ErrEmailTaken         = apperr.Conflict("Email is already registered")
)

var usernamePattern = regexp.MustCompile(`^[\w\-.]{2,20}$`)

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Biography   string
	URLFacebook string
	URLLinkedIn string
	URLTwitter  string
}

type LoginResult struct {
	User  string          `json:"user"`
	Role  entity.UserRole `json:"role"`
	Token string          `json:"token"`
}

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	uow        persistent.UnitOfWork
	jwtService *jwt.Service
	revoker    TokenRevoker
	events     EventPublisher
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	uow persistent.UnitOfWork,
	jwtService *jwt.Service,
	revoker TokenRevoker,
	events EventPublisher,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		uow:        uow,
		jwtService: jwtService,
		revoker:    revoker,
		events:     events,
		logger:     logger,
	}
}

func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if !ValidUsername(input.Username) {
		return nil, apperr.Validation("Username must be 2-20 letters, digits, '_', '-' or '.'")
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return nil, apperr.Validation("A valid email is required")
	}
	if len(input.Password) < MinPasswordLength {
		return nil, apperr.Validation("Password must be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, apperr.Internal("failed to process registration", err)
	}

	user := &entity.User{
		Username:    input.Username,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Biography:   input.Biography,
		URLFacebook: input.URLFacebook,
		URLLinkedIn: input.URLLinkedIn,
		URLTwitter:  input.URLTwitter,
		Password:    string(hashedPassword),
		Role:        entity.RoleBlogger,
	}

	err = uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		taken, err := repos.Users.ExistsByUsername(ctx, user.Username)
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameTaken
		}

		taken, err = repos.Users.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}

		return repos.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, storeError(uc.logger, "register user", err, apperr.KindValidation, "Invalid registration")
	}

	uc.logger.Info("User registered: %s", user.ID)
	publish(ctx, uc.events, uc.logger, EventUserRegistered, map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
	})

	return user, nil
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, ErrUnknownCredentials
		}
		return nil, storeError(uc.logger, "load user", err, apperr.KindNotFound, ErrUnknownCredentials.Message)
	}

	if user.LockedOut {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, apperr.Internal("failed to generate token", err)
	}

	return &LoginResult{User: user.Username, Role: user.Role, Token: token}, nil
}

func (uc *authUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if uc.revoker == nil {
		uc.logger.Warn("Logout without a revocation store; token %s stays valid until expiry", tokenID)
		return nil
	}
	if tokenID == "" {
		return apperr.Validation("Token has no id")
	}
	if err := uc.revoker.Revoke(ctx, tokenID, expiresAt); err != nil {
		uc.logger.Error("Failed to revoke token: %v", err)
		return apperr.Internal("failed to revoke token", err)
	}
	return nil
}
