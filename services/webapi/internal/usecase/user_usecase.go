package usecase

import (
	"context"
	"strings"

	"blog-api/pkg/apperr"
	"blog-api/pkg/logger"
	"blog-api/pkg/pagination"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const userMissing = "User does not exist"

var ErrWrongOldPassword = apperr.Conflict("The old password is incorrect")

type PersonalDataInput struct {
	FirstName   string
	LastName    string
	Biography   string
	URLFacebook string
	URLLinkedIn string
	URLTwitter  string
}

type UserUseCase interface {
	GetUser(ctx context.Context, id string) (*entity.Profile, error)
	ListUsers(ctx context.Context, caller Caller, page pagination.Page) ([]*entity.User, int64, error)
	UsernameAvailable(ctx context.Context, username string) (bool, error)
	EditPersonalData(ctx context.Context, caller Caller, id string, input PersonalDataInput) error
	ChangePassword(ctx context.Context, caller Caller, id, oldPassword, newPassword string) error
	DeleteUser(ctx context.Context, caller Caller, id string) error
	BanUser(ctx context.Context, caller Caller, id string) error
	UnbanUser(ctx context.Context, caller Caller, id string) error
}

type userUseCase struct {
	userRepo persistent.UserRepository
	uow      persistent.UnitOfWork
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, uow persistent.UnitOfWork, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
	}
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*entity.Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(uc.logger, "get user", err, apperr.KindNotFound, userMissing)
	}
	profile := user.Profile()
	return &profile, nil
}

func (uc *userUseCase) ListUsers(ctx context.Context, caller Caller, page pagination.Page) ([]*entity.User, int64, error) {
	if err := RequireRole(caller, entity.RoleAdministrator); err != nil {
		return nil, 0, err
	}
	users, total, err := uc.userRepo.List(ctx, page)
	if err != nil {
		return nil, 0, storeError(uc.logger, "list users", err, apperr.KindNotFound, userMissing)
	}
	return users, total, nil
}

func (uc *userUseCase) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if !ValidUsername(username) {
		return false, nil
	}
	taken, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, storeError(uc.logger, "check username", err, apperr.KindNotFound, userMissing)
	}
	return !taken, nil
}

func (uc *userUseCase) EditPersonalData(ctx context.Context, caller Caller, id string, input PersonalDataInput) error {
	if err := RequireRole(caller, entity.RoleBlogger); err != nil {
		return err
	}
	if err := RequireOwner(caller, id); err != nil {
		return err
	}

	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		return repos.Users.UpdatePersonalData(ctx, &entity.User{
			ID:          id,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Biography:   input.Biography,
			URLFacebook: input.URLFacebook,
			URLLinkedIn: input.URLLinkedIn,
			URLTwitter:  input.URLTwitter,
		})
	})
	if err != nil {
		return storeError(uc.logger, "edit personal data", err, apperr.KindValidation, userMissing)
	}
	return nil
}

func (uc *userUseCase) ChangePassword(ctx context.Context, caller Caller, id, oldPassword, newPassword string) error {
	if err := RequireOwner(caller, id); err != nil {
		return err
	}
	if len(newPassword) < MinPasswordLength {
		return apperr.Validation("Password must be at least 6 characters")
	}

	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		user, err := repos.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
			return ErrWrongOldPassword
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Internal("failed to hash password", err)
		}
		return repos.Users.UpdatePassword(ctx, id, string(hashed))
	})
	if err != nil {
		return storeError(uc.logger, "change password", err, apperr.KindValidation, userMissing)
	}
	return nil
}

// DeleteUser removes the account along with the posts and polls it owns.
// Comments and poll attachments on those posts go with them.
func (uc *userUseCase) DeleteUser(ctx context.Context, caller Caller, id string) error {
	if err := RequireRole(caller, entity.RoleAdministrator); err != nil {
		return err
	}

	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		if err := repos.Users.Delete(ctx, id); err != nil {
			return err
		}
		if err := repos.Polls.DeleteByUser(ctx, id); err != nil {
			return err
		}
		// Before the posts go, while the subqueries still see them
		if err := repos.Comments.DeleteByPostAuthor(ctx, id); err != nil {
			return err
		}
		if err := repos.Polls.DeletePostPollsByPostAuthor(ctx, id); err != nil {
			return err
		}
		return repos.Posts.DeleteByUser(ctx, id)
	})
	if err != nil {
		return storeError(uc.logger, "delete user", err, apperr.KindValidation, userMissing)
	}

	uc.logger.Info("User deleted: %s", id)
	return nil
}

func (uc *userUseCase) BanUser(ctx context.Context, caller Caller, id string) error {
	return uc.setLockedOut(ctx, caller, id, true)
}

func (uc *userUseCase) UnbanUser(ctx context.Context, caller Caller, id string) error {
	return uc.setLockedOut(ctx, caller, id, false)
}

func (uc *userUseCase) setLockedOut(ctx context.Context, caller Caller, id string, locked bool) error {
	if err := RequireRole(caller, entity.RoleAdministrator); err != nil {
		return err
	}

	err := uc.uow.Do(ctx, func(repos persistent.Repositories) error {
		return repos.Users.SetLockedOut(ctx, id, locked)
	})
	if err != nil {
		return storeError(uc.logger, "set lockout", err, apperr.KindValidation, userMissing)
	}

	uc.logger.Info("User %s locked out: %t", id, locked)
	return nil
}
