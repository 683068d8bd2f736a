package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/common"
	"github.com/dmitrijs2005/policykeeper/internal/dbx"
	"github.com/dmitrijs2005/policykeeper/internal/logging"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/kv"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/users"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
	"github.com/google/uuid"
)

// MinAccountPassword is the shortest accepted account password.
const MinAccountPassword = 6

// AuthService manages local accounts. Accounts only gate the terminal
// client; they do not scope data.
//
// Contract:
//   - Register: normalizes the mobile number, requires matching confirmation
//     and at least six characters, rejects a taken number, then stores the
//     account and signs it in within one transaction.
//   - Login: signs in when number and password match (ErrInvalidCredentials).
//   - Logout: forgets the signed-in account.
//   - ChangePassword: requires a signed-in account (ErrUnauthorized), the
//     current password (ErrInvalidCredentials) and a confirmed new one.
type AuthService interface {
	Register(ctx context.Context, mobile, password, confirm string) (models.User, error)
	Login(ctx context.Context, mobile, password string) (models.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.User, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) error
}

type authService struct {
	db     *sql.DB
	hasher PasswordHasher
	log    logging.Logger
	now    func() time.Time
}

// NewAuthService constructs an AuthService over db.
func NewAuthService(db *sql.DB, hasher PasswordHasher, log logging.Logger) AuthService {
	if hasher == nil {
		hasher = PlainHasher{}
	}
	return &authService{db: db, hasher: hasher, log: log.With("module", "auth"), now: time.Now}
}

func (a *authService) getUserStore(db dbx.DBTX) users.Store {
	return users.NewKVStore(kv.NewSQLiteRepository(db))
}

func checkNewPassword(password, confirm string) error {
	if password != confirm {
		return common.ErrPasswordMismatch
	}
	if len([]rune(password)) < MinAccountPassword {
		return common.ErrPasswordTooShort
	}
	return nil
}

func (a *authService) Register(ctx context.Context, mobile, password, confirm string) (models.User, error) {
	mobile, err := models.NormalizePhone(mobile)
	if err != nil {
		return models.User{}, err
	}
	if err := checkNewPassword(password, confirm); err != nil {
		return models.User{}, err
	}
	stored, err := a.hasher.Hash(password)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:           uuid.NewString(),
		MobileNumber: mobile,
		Password:     stored,
		CreatedAt:    timex.Timestamp(a.now()),
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := a.getUserStore(tx)
		list, err := store.List(ctx)
		if err != nil {
			return err
		}
		for _, existing := range list {
			if existing.MobileNumber == mobile {
				return common.ErrAlreadyRegistered
			}
		}
		if err := store.SaveAll(ctx, append(list, u)); err != nil {
			return err
		}
		return store.SetCurrent(ctx, &u)
	})
	if err != nil {
		return models.User{}, err
	}
	a.log.Info(ctx, "account registered", "user", u.ID)
	return u, nil
}

func (a *authService) Login(ctx context.Context, mobile, password string) (models.User, error) {
	mobile, err := models.NormalizePhone(mobile)
	if err != nil {
		return models.User{}, common.ErrInvalidCredentials
	}
	store := a.getUserStore(a.db)
	list, err := store.List(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range list {
		if u.MobileNumber == mobile && a.hasher.Verify(u.Password, password) {
			if err := store.SetCurrent(ctx, &u); err != nil {
				return models.User{}, err
			}
			a.log.Info(ctx, "signed in", "user", u.ID)
			return u, nil
		}
	}
	a.log.Warn(ctx, "sign in rejected")
	return models.User{}, common.ErrInvalidCredentials
}

func (a *authService) Logout(ctx context.Context) error {
	return a.getUserStore(a.db).SetCurrent(ctx, nil)
}

func (a *authService) Current(ctx context.Context) (*models.User, error) {
	return a.getUserStore(a.db).Current(ctx)
}

func (a *authService) ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) error {
	if err := checkNewPassword(newPassword, confirm); err != nil {
		return err
	}
	stored, err := a.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := a.getUserStore(tx)
		cur, err := store.Current(ctx)
		if err != nil {
			return err
		}
		if cur == nil {
			return common.ErrUnauthorized
		}
		list, err := store.List(ctx)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID != cur.ID {
				continue
			}
			if !a.hasher.Verify(list[i].Password, oldPassword) {
				return common.ErrInvalidCredentials
			}
			list[i].Password = stored
			if err := store.SaveAll(ctx, list); err != nil {
				return err
			}
			return store.SetCurrent(ctx, &list[i])
		}
		return common.ErrInvalidCredentials
	})
}
