package domain

import "context"

// Contact is a CRM entry.
type Contact struct {
	ID              string   `json:"id" bson:"_id"`
	Name            string   `json:"name" bson:"name"`
	Email           string   `json:"email,omitempty" bson:"email,omitempty"`
	Phone           string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Company         string   `json:"company,omitempty" bson:"company,omitempty"`
	Role            string   `json:"role,omitempty" bson:"role,omitempty"`
	Notes           string   `json:"notes,omitempty" bson:"notes,omitempty"`
	Tags            []string `json:"tags,omitempty" bson:"tags,omitempty"`
	LastInteraction int64    `json:"lastInteraction,omitempty" bson:"lastInteraction,omitempty"`
	Source          string   `json:"source,omitempty" bson:"source,omitempty"`
	CreatedAt       int64    `json:"createdAt" bson:"createdAt"`
}

// ContactCreate is the input shape for creating a contact.
type ContactCreate struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone"`
	Company         string   `json:"company"`
	Role            string   `json:"role"`
	Notes           string   `json:"notes"`
	Tags            []string `json:"tags"`
	LastInteraction int64    `json:"lastInteraction"`
	Source          string   `json:"source"`
}

// ContactPatch carries the mutable fields of a contact.
type ContactPatch struct {
	Name            *string   `json:"name"`
	Email           *string   `json:"email"`
	Phone           *string   `json:"phone"`
	Company         *string   `json:"company"`
	Role            *string   `json:"role"`
	Notes           *string   `json:"notes"`
	Tags            *[]string `json:"tags"`
	LastInteraction *int64    `json:"lastInteraction"`
	Source          *string   `json:"source"`
}

// ContactRepository defines contact storage. List is ordered by name.
type ContactRepository interface {
	Insert(ctx context.Context, contact *Contact) error
	List(ctx context.Context) ([]Contact, error)
	Update(ctx context.Context, id string, patch ContactPatch) error
	Delete(ctx context.Context, id string) error
}
