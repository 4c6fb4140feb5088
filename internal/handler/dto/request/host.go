package request

import (
	"slotbook/internal/usecase/commands"
)

type RegisterHostRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Timezone string `json:"timezone" binding:"required"`
}

func (r RegisterHostRequest) ToInput() commands.RegisterHostInput {
	return commands.RegisterHostInput{
		Username: r.Username,
		Name:     r.Name,
		Email:    r.Email,
		Timezone: r.Timezone,
	}
}

type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Timezone string `json:"timezone" binding:"required"`
}

func (r UpdateProfileRequest) ToInput() commands.ProfileInput {
	return commands.ProfileInput{
		Name:     r.Name,
		Email:    r.Email,
		Timezone: r.Timezone,
	}
}
