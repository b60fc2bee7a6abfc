package grocery

import (
	"context"

	"recipe-hub/entities"

	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		CreateList(ctx context.Context, list *entities.GroceryList) error
		GetListByID(ctx context.Context, id string) (*entities.GroceryList, error)
		GetListByUserAndWeek(ctx context.Context, userID, week string) (*entities.GroceryList, error)
		GetListsByUser(ctx context.Context, userID string) ([]*entities.GroceryList, error)
		ReplaceItems(ctx context.Context, listID string, items []*entities.GroceryItem) error
		AddItem(ctx context.Context, item *entities.GroceryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.GroceryItem, error)
		UpdateItem(ctx context.Context, item *entities.GroceryItem) error
		DeleteItem(ctx context.Context, id string) error
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) CreateList(ctx context.Context, list *entities.GroceryList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *groceryRepository) GetListByID(ctx context.Context, id string) (*entities.GroceryList, error) {
	var list entities.GroceryList
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *groceryRepository) GetListByUserAndWeek(ctx context.Context, userID, week string) (*entities.GroceryList, error) {
	var list entities.GroceryList
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("user_id = ? AND week = ?", userID, week).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *groceryRepository) GetListsByUser(ctx context.Context, userID string) ([]*entities.GroceryList, error) {
	var lists []*entities.GroceryList
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("user_id = ?", userID).
		Order("week desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *groceryRepository) ReplaceItems(ctx context.Context, listID string, items []*entities.GroceryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("grocery_list_id = ?", listID).Delete(&entities.GroceryItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *groceryRepository) AddItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *groceryRepository) GetItemByID(ctx context.Context, id string) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) UpdateItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *groceryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryItem{}).Error
}
