package repository

import (
	"context"
	"errors"

	"parley-chat/internal/domain/user"
	parley_errors "parley-chat/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return parley_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, parley_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, parley_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []user.User
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PostgresUserRepository) CreateToken(ctx context.Context, t *user.AuthToken) error {
	res := r.db.WithContext(ctx).Create(t)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return parley_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserRepository) GetToken(ctx context.Context, tokenHash string) (user.AuthToken, error) {
	var t user.AuthToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.AuthToken{}, parley_errors.ErrNotFound
		}
		return user.AuthToken{}, err
	}
	return t, nil
}

func (r *PostgresUserRepository) DeleteToken(ctx context.Context, tokenHash string) error {
	res := r.db.WithContext(ctx).Delete(&user.AuthToken{}, "token_hash = ?", tokenHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return parley_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) DeleteUserTokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var hashes []string
	err := r.db.WithContext(ctx).
		Model(&user.AuthToken{}).
		Where("user_id = ?", userID).
		Pluck("token_hash", &hashes).Error
	if err != nil {
		return nil, err
	}
	if len(hashes) == 0 {
		return nil, nil
	}

	err = r.db.WithContext(ctx).
		Delete(&user.AuthToken{}, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return hashes, nil
}
