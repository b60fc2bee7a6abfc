package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipe-hub/domain"
	"recipe-hub/entities"
	"recipe-hub/internal/utils"
	"recipe-hub/internal/utils/mailing"
	"recipe-hub/internal/utils/storage"
	"recipe-hub/pkg/jwt"
	"recipe-hub/pkg/recipe"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error
		SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error
		VerifyEmail(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		AddFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error
		RemoveFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error
		GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error)
		UpdateUserRole(ctx context.Context, id string, role string) error
		DeleteUser(ctx context.Context, id string) error
		GetCookingHistory(ctx context.Context, userID string) ([]domain.CookingHistoryEntry, error)
	}

	userService struct {
		userRepository   UserRepository
		recipeRepository recipe.RecipeRepository
		jwtService       jwt.JWTService
		s3               storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, recipeRepository recipe.RecipeRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository:   userRepository,
		recipeRepository: recipeRepository,
		jwtService:       jwtService,
		s3:               s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	res := domain.MeResponse{
		UserResponse: toUserResponse(user),
	}

	favorites, err := s.userRepository.GetFavorites(ctx, userID)
	if err != nil {
		return domain.MeResponse{}, err
	}
	for _, favorite := range favorites {
		if favorite.Recipe == nil {
			continue
		}
		res.Favorites = append(res.Favorites, recipe.ToRecipeResponse(favorite.Recipe))
	}

	history, err := s.userRepository.GetCookingHistory(ctx, userID)
	if err != nil {
		return domain.MeResponse{}, err
	}
	for _, entry := range history {
		res.CookingHistory = append(res.CookingHistory, domain.CookingHistoryEntry{
			RecipeID: entry.RecipeID.String(),
			Cuisine:  entry.Cuisine,
			Category: entry.Category,
			CookedAt: entry.CookedAt,
		})
	}

	return res, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.ProfilePhoto != nil {
		fileName := fmt.Sprintf("user-%s", user.ID.String())

		var objectKey string
		if user.ProfilePhotoURL != "" {
			existingKey := s.s3.GetObjectKeyFromLink(user.ProfilePhotoURL)
			if existingKey != "" {
				objectKey, err = s.s3.UpdateFile(existingKey, req.ProfilePhoto, storage.AllowImage...)
			} else {
				objectKey, err = s.s3.UploadFile(fileName, req.ProfilePhoto, "profiles", storage.AllowImage...)
			}
		} else {
			objectKey, err = s.s3.UploadFile(fileName, req.ProfilePhoto, "profiles", storage.AllowImage...)
		}
		if err != nil {
			return err
		}
		user.ProfilePhotoURL = s.s3.GetPublicLinkKey(objectKey)
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GeneratePurposeToken(map[string]any{
		"user_id": user.ID.String(),
		"purpose": "verify_email",
	}, 24*time.Hour)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please verify your email by clicking <a href=%q>this link</a>. The link expires in 24 hours.</p>",
		user.Name, link,
	)

	return mailing.SendMail(user.Email, "Verify your email", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidatePurposeToken(token)
	if err != nil {
		return err
	}

	if purpose, _ := claims["purpose"].(string); purpose != "verify_email" {
		return domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.Verified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GeneratePurposeToken(map[string]any{
		"user_id": user.ID.String(),
		"purpose": "reset_password",
	}, time.Hour)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Reset your password by clicking <a href=%q>this link</a>. The link expires in one hour.</p>",
		user.Name, link,
	)

	return mailing.SendMail(user.Email, "Reset your password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidatePurposeToken(req.Token)
	if err != nil {
		return err
	}

	if purpose, _ := claims["purpose"].(string); purpose != "reset_password" {
		return domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) AddFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	// Adding twice is a no-op.
	if _, err := s.userRepository.GetFavorite(ctx, userID, req.RecipeID); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.userRepository.AddFavorite(ctx, &entities.Favorite{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipeUUID,
	})
}

func (s *userService) RemoveFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error {
	return s.userRepository.RemoveFavorite(ctx, userID, req.RecipeID)
}

func (s *userService) GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, toUserResponse(user))
	}
	return res, count, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, id string, role string) error {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.Role = role
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteUser(ctx, id)
}

func (s *userService) GetCookingHistory(ctx context.Context, userID string) ([]domain.CookingHistoryEntry, error) {
	history, err := s.userRepository.GetCookingHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CookingHistoryEntry, 0, len(history))
	for _, entry := range history {
		res = append(res, domain.CookingHistoryEntry{
			RecipeID: entry.RecipeID.String(),
			Cuisine:  entry.Cuisine,
			Category: entry.Category,
			CookedAt: entry.CookedAt,
		})
	}
	return res, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:              user.ID.String(),
		Name:            user.Name,
		Email:           user.Email,
		Role:            user.Role,
		ProfilePhotoURL: user.ProfilePhotoURL,
		Verified:        user.Verified,
		CreatedAt:       user.CreatedAt,
	}
}
