package usecases

import (
	"context"
	"strings"

	"github.com/appmaster-hq/appmaster/internal/application/user/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
	vo "github.com/appmaster-hq/appmaster/internal/domain/user/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

const (
	minPasswordLength = 6

	signupSuccessMessage = "Account created! Please check your email to verify."
	signupNoMailMessage  = "Account created!"
)

type SignupCommand struct {
	Name             string
	Email            string
	Password         string
	ConfirmPassword  string
	AccountType      string
	OrganisationName string
}

type SignupResult struct {
	User    dto.CurrentUserDTO
	Message string
}

// SignupUseCase registers a user together with the organisation they own.
// Personal accounts get an organisation named after the user.
type SignupUseCase struct {
	userRepo            user.Repository
	orgRepo             user.OrganisationRepository
	hasher              PasswordHasher
	mailer              ConfirmationSender
	txMgr               db.Transactor
	requireConfirmation bool
	logger              logger.Interface
}

func NewSignupUseCase(
	userRepo user.Repository,
	orgRepo user.OrganisationRepository,
	hasher PasswordHasher,
	mailer ConfirmationSender,
	txMgr db.Transactor,
	requireConfirmation bool,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo:            userRepo,
		orgRepo:             orgRepo,
		hasher:              hasher,
		mailer:              mailer,
		txMgr:               txMgr,
		requireConfirmation: requireConfirmation,
		logger:              logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	if cmd.Password != cmd.ConfirmPassword {
		return nil, errors.NewValidationError("Passwords do not match")
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("Password should be at least 6 characters")
	}
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("Invalid email address")
	}
	accountType := vo.AccountTypePersonal
	if cmd.AccountType != "" {
		if accountType, err = vo.NewAccountType(cmd.AccountType); err != nil {
			return nil, errors.NewValidationError("Invalid account type")
		}
	}
	orgName := strings.TrimSpace(cmd.Name)
	if !accountType.IsPersonal() {
		orgName = strings.TrimSpace(cmd.OrganisationName)
		if orgName == "" {
			return nil, errors.NewValidationError("Organisation name is required")
		}
	}

	uc.logger.Infow("executing signup use case", "account_type", accountType)

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.NewInternalError("Failed to create account")
	}
	if exists {
		return nil, errors.NewConflictError("User already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Failed to create account")
	}

	now := biztime.NowUTC()
	var created *user.User
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		org, err := user.NewOrganisation(orgName, now)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.orgRepo.Create(txCtx, org); err != nil {
			return err
		}
		u, err := user.NewUser(email, cmd.Name, hash, accountType, &org.ID, now)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if !uc.requireConfirmation {
			u.MarkEmailConfirmed()
		}
		if err := uc.userRepo.Create(txCtx, u); err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("User already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("Failed to create account")
	}

	message := signupNoMailMessage
	if token := created.ConfirmationToken(); token != nil {
		// The account stands even when the mail cannot be sent.
		if err := uc.mailer.SendConfirmationEmail(created.Email().String(), created.Name(), *token); err != nil {
			uc.logger.Warnw("failed to send confirmation email", "user_id", created.ID(), "error", err)
		}
		message = signupSuccessMessage
	}

	uc.logger.Infow("user signed up", "user_id", created.ID(), "account_type", accountType)
	return &SignupResult{User: dto.ToCurrentUserDTO(created), Message: message}, nil
}
