package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login success"
	MessageSuccessGetMe            = "success get user profile"
	MessageSuccessUpdateUser       = "user updated successfully"
	MessageSuccessSendVerifyEmail  = "verification email sent"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessForgotPassword   = "password reset email sent"
	MessageSuccessResetPassword    = "password reset successfully"
	MessageSuccessAddFavorite      = "recipe added to favorites"
	MessageSuccessRemoveFavorite   = "recipe removed from favorites"
	MessageSuccessGetUsers         = "success get users"
	MessageSuccessDeleteUser       = "user deleted successfully"
	MessageSuccessUpdateRole       = "user role updated successfully"
	MessageSuccessGetCookingLog    = "success get cooking history"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to get user profile"
	MessageFailedUpdateUser      = "failed to update user"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedForgotPassword  = "failed to send password reset email"
	MessageFailedResetPassword   = "failed to reset password"
	MessageFailedAddFavorite     = "failed to add favorite"
	MessageFailedRemoveFavorite  = "failed to remove favorite"
	MessageFailedGetUsers        = "failed to get users"
	MessageFailedDeleteUser      = "failed to delete user"
	MessageFailedUpdateRole      = "failed to update user role"
	MessageFailedGetCookingLog   = "failed to get cooking history"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name         string                `json:"name" form:"name" validate:"omitempty"`
		ProfilePhoto *multipart.FileHeader `json:"profile_photo" form:"profile_photo" validate:"omitempty"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UpdateUserRoleRequest struct {
		Role string `json:"role" validate:"required,oneof=user admin"`
	}

	FavoriteRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	UserResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Email           string    `json:"email"`
		Role            string    `json:"role"`
		ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
		Verified        bool      `json:"verified"`
		CreatedAt       time.Time `json:"created_at"`
	}

	MeResponse struct {
		UserResponse
		Favorites      []RecipeResponse      `json:"favorites"`
		CookingHistory []CookingHistoryEntry `json:"cooking_history"`
	}

	CookingHistoryEntry struct {
		RecipeID string    `json:"recipe_id"`
		Cuisine  string    `json:"cuisine"`
		Category string    `json:"category"`
		CookedAt time.Time `json:"cooked_at"`
	}
)
