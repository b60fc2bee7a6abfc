package user

import (
	"context"

	"recipe-hub/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, id string) error
		GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error)
		AddFavorite(ctx context.Context, favorite *entities.Favorite) error
		RemoveFavorite(ctx context.Context, userID, recipeID string) error
		GetFavorite(ctx context.Context, userID, recipeID string) (*entities.Favorite, error)
		GetFavorites(ctx context.Context, userID string) ([]*entities.Favorite, error)
		GetCookingHistory(ctx context.Context, userID string) ([]*entities.CookingHistory, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entities.CookingHistory{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.User{}).Error
	})
}

func (r *userRepository) GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *userRepository) AddFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *userRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{}).Error
}

func (r *userRepository) GetFavorite(ctx context.Context, userID, recipeID string) (*entities.Favorite, error) {
	var favorite entities.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *userRepository) GetFavorites(ctx context.Context, userID string) ([]*entities.Favorite, error) {
	var favorites []*entities.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *userRepository) GetCookingHistory(ctx context.Context, userID string) ([]*entities.CookingHistory, error) {
	var history []*entities.CookingHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("cooked_at desc").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}
