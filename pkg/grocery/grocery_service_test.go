package grocery

import (
	"context"
	"testing"

	"recipe-hub/domain"
	"recipe-hub/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGroceryRepository struct {
	lists   map[string]*entities.GroceryList
	created int
}

func newFakeGroceryRepository() *fakeGroceryRepository {
	return &fakeGroceryRepository{lists: make(map[string]*entities.GroceryList)}
}

func listKey(userID, week string) string {
	return userID + "/" + week
}

func (r *fakeGroceryRepository) CreateList(_ context.Context, list *entities.GroceryList) error {
	r.created++
	r.lists[listKey(list.UserID.String(), list.Week)] = list
	return nil
}

func (r *fakeGroceryRepository) GetListByID(_ context.Context, id string) (*entities.GroceryList, error) {
	for _, list := range r.lists {
		if list.ID.String() == id {
			return list, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroceryRepository) GetListByUserAndWeek(_ context.Context, userID, week string) (*entities.GroceryList, error) {
	list, ok := r.lists[listKey(userID, week)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return list, nil
}

func (r *fakeGroceryRepository) GetListsByUser(_ context.Context, userID string) ([]*entities.GroceryList, error) {
	var res []*entities.GroceryList
	for _, list := range r.lists {
		if list.UserID.String() == userID {
			res = append(res, list)
		}
	}
	return res, nil
}

func (r *fakeGroceryRepository) ReplaceItems(_ context.Context, listID string, items []*entities.GroceryItem) error {
	for _, list := range r.lists {
		if list.ID.String() == listID {
			list.Items = items
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeGroceryRepository) AddItem(_ context.Context, item *entities.GroceryItem) error {
	for _, list := range r.lists {
		if list.ID == item.GroceryListID {
			list.Items = append(list.Items, item)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeGroceryRepository) GetItemByID(_ context.Context, id string) (*entities.GroceryItem, error) {
	for _, list := range r.lists {
		for _, item := range list.Items {
			if item.ID.String() == id {
				return item, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroceryRepository) UpdateItem(_ context.Context, _ *entities.GroceryItem) error {
	return nil
}

func (r *fakeGroceryRepository) DeleteItem(_ context.Context, _ string) error {
	return nil
}

func TestGetGroceryListCreatesEmptyListOnFirstRead(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo, nil)
	userID := uuid.New().String()

	res, err := service.GetGroceryList(context.Background(), userID, "2025-03")
	require.NoError(t, err)

	assert.Equal(t, "2025-03", res.Week)
	assert.Empty(t, res.Items)
	assert.Equal(t, 1, repo.created)
}

func TestGetGroceryListReusesExistingList(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo, nil)
	userID := uuid.New().String()

	first, err := service.GetGroceryList(context.Background(), userID, "2025-03")
	require.NoError(t, err)

	second, err := service.GetGroceryList(context.Background(), userID, "2025-03")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.created)
}

func TestGetGroceryListRejectsInvalidWeek(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo, nil)
	userID := uuid.New().String()

	_, err := service.GetGroceryList(context.Background(), userID, "2025-99")
	assert.ErrorIs(t, err, domain.ErrInvalidWeek)
	assert.Zero(t, repo.created)
}

func TestAddItemCategorizesWhenCategoryOmitted(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo, nil)
	userID := uuid.New().String()

	res, err := service.AddItem(context.Background(), "2025-03", domain.AddGroceryItemRequest{
		Name:     "Whole Milk",
		Quantity: "1",
		Unit:     "l",
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, CategoryDairy, res.Category)
}
