package grocery

import (
	"context"
	"errors"
	"time"

	"recipe-hub/domain"
	"recipe-hub/entities"
	"recipe-hub/pkg/mealplan"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroceryService interface {
		GenerateGroceryList(ctx context.Context, req domain.GenerateGroceryListRequest, userID string) (domain.GroceryListResponse, error)
		GetGroceryList(ctx context.Context, userID, week string) (domain.GroceryListResponse, error)
		GetGroceryLists(ctx context.Context, userID string) ([]domain.GroceryListResponse, error)
		AddItem(ctx context.Context, week string, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error)
		UpdateItem(ctx context.Context, itemID string, req domain.UpdateGroceryItemRequest, userID string) error
		RemoveItem(ctx context.Context, itemID string, userID string) error
	}

	groceryService struct {
		groceryRepository  GroceryRepository
		mealPlanRepository mealplan.MealPlanRepository
	}
)

func NewGroceryService(groceryRepository GroceryRepository, mealPlanRepository mealplan.MealPlanRepository) GroceryService {
	return &groceryService{
		groceryRepository:  groceryRepository,
		mealPlanRepository: mealPlanRepository,
	}
}

// GenerateGroceryList aggregates the ingredients of every meal plan in the
// week's window and replaces the week's list contents with the result.
// Custom start and end dates override the derived window.
func (s *groceryService) GenerateGroceryList(ctx context.Context, req domain.GenerateGroceryListRequest, userID string) (domain.GroceryListResponse, error) {
	start, end, err := mealplan.WeekWindow(req.Week)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	if req.StartDate != "" {
		start, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return domain.GroceryListResponse{}, domain.ErrInvalidDate
		}
	}
	if req.EndDate != "" {
		end, err = time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return domain.GroceryListResponse{}, domain.ErrInvalidDate
		}
	}

	plans, err := s.mealPlanRepository.GetMealPlansInRange(ctx, userID, start, end)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	list, err := s.getOrCreateList(ctx, userID, req.Week)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	items := AggregateIngredients(plans)
	for _, item := range items {
		item.ID = uuid.New()
		item.GroceryListID = list.ID
	}

	if err := s.groceryRepository.ReplaceItems(ctx, list.ID.String(), items); err != nil {
		return domain.GroceryListResponse{}, err
	}

	list.Items = items
	return toGroceryListResponse(list), nil
}

// GetGroceryList returns the week's list, creating an empty one on first read.
func (s *groceryService) GetGroceryList(ctx context.Context, userID, week string) (domain.GroceryListResponse, error) {
	if _, _, err := mealplan.WeekWindow(week); err != nil {
		return domain.GroceryListResponse{}, err
	}

	list, err := s.getOrCreateList(ctx, userID, week)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	return toGroceryListResponse(list), nil
}

func (s *groceryService) GetGroceryLists(ctx context.Context, userID string) ([]domain.GroceryListResponse, error) {
	lists, err := s.groceryRepository.GetListsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.GroceryListResponse, 0, len(lists))
	for _, list := range lists {
		res = append(res, toGroceryListResponse(list))
	}
	return res, nil
}

func (s *groceryService) AddItem(ctx context.Context, week string, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error) {
	if _, _, err := mealplan.WeekWindow(week); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	list, err := s.getOrCreateList(ctx, userID, week)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}

	category := req.Category
	if category == "" {
		category = CategorizeIngredient(req.Name)
	}

	item := &entities.GroceryItem{
		ID:            uuid.New(),
		GroceryListID: list.ID,
		Name:          req.Name,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Category:      category,
		Position:      len(list.Items),
	}

	if err := s.groceryRepository.AddItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return toGroceryItemResponse(item), nil
}

func (s *groceryService) UpdateItem(ctx context.Context, itemID string, req domain.UpdateGroceryItemRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Purchased != nil {
		item.Purchased = *req.Purchased
	}

	return s.groceryRepository.UpdateItem(ctx, item)
}

func (s *groceryService) RemoveItem(ctx context.Context, itemID string, userID string) error {
	if _, err := s.getOwnedItem(ctx, itemID, userID); err != nil {
		return err
	}
	return s.groceryRepository.DeleteItem(ctx, itemID)
}

func (s *groceryService) getOrCreateList(ctx context.Context, userID, week string) (*entities.GroceryList, error) {
	list, err := s.groceryRepository.GetListByUserAndWeek(ctx, userID, week)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	list = &entities.GroceryList{
		ID:     uuid.New(),
		UserID: userUUID,
		Week:   week,
	}
	if err := s.groceryRepository.CreateList(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *groceryService) getOwnedItem(ctx context.Context, itemID, userID string) (*entities.GroceryItem, error) {
	item, err := s.groceryRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroceryItemNotFound
		}
		return nil, err
	}

	list, err := s.groceryRepository.GetListByID(ctx, item.GroceryListID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroceryListNotFound
		}
		return nil, err
	}

	if list.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return item, nil
}

func toGroceryItemResponse(item *entities.GroceryItem) domain.GroceryItemResponse {
	res := domain.GroceryItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		Category:  item.Category,
		Purchased: item.Purchased,
	}
	if item.RecipeID != nil {
		res.RecipeID = item.RecipeID.String()
	}
	return res
}

func toGroceryListResponse(list *entities.GroceryList) domain.GroceryListResponse {
	res := domain.GroceryListResponse{
		ID:        list.ID.String(),
		Week:      list.Week,
		Items:     make([]domain.GroceryItemResponse, 0, len(list.Items)),
		CreatedAt: list.CreatedAt,
	}
	for _, item := range list.Items {
		res.Items = append(res.Items, toGroceryItemResponse(item))
	}
	return res
}
