package dto

import (
	userModel "eljardin/internal/domains/user/model"
	userDto "eljardin/internal/domains/user/model/dto"
	"eljardin/shared/constant"
	"eljardin/shared/timezone"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Address  string `json:"address" validate:"omitempty"`
}

// ToModel builds a new user from the signup payload. The caller supplies the
// bcrypt hash; the plaintext password never touches the model.
func (r SignupRequest) ToModel(hashedPassword string) userModel.User {
	now := timezone.Now()

	user := userModel.User{
		ID:        uuid.NewString(),
		Name:      r.Name,
		Email:     r.Email,
		Password:  hashedPassword,
		Role:      constant.RoleUser,
		UpdatedAt: now,
	}
	user.CreatedAt = now

	if r.Phone != "" {
		user.Phone = &r.Phone
	}

	if r.Address != "" {
		user.Address = &r.Address
	}

	return user
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupResponse struct {
	UserID string               `json:"user_id"`
	Token  string               `json:"token"`
	User   userDto.UserResponse `json:"user"`
}

type LoginResponse struct {
	Token string               `json:"token"`
	User  userDto.UserResponse `json:"user"`
}
