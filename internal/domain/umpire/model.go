package umpire

import "context"

// Umpire is a match official of any category, unique by name.
type Umpire struct {
	ID       string `json:"-"`
	Name     string `json:"name" validate:"required"`
	FullName string `json:"full_name"`
}

// Repository describes umpire persistence needs from use cases.
type Repository interface {
	FindByName(ctx context.Context, name string) (Umpire, bool, error)
	Create(ctx context.Context, u Umpire) (Umpire, error)
}
