package models

// LocationInput creates or updates a location.
type LocationInput struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
}

// ServiceInput creates or updates a service.
type ServiceInput struct {
	Name        string  `json:"name" validate:"required"`
	DurationMin int     `json:"duration_minutes" validate:"gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// ResourceInput creates or updates a resource.
type ResourceInput struct {
	Name        string `json:"name" validate:"required"`
	LocationUID string `json:"location_uid" validate:"required"`
}

// Customer is an entry of the admin customer listing.
type Customer struct {
	UID      string `json:"uid"`
	Nickname string `json:"nickname,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
}

type roleUpdate struct {
	TargetRole Role `json:"target_role"`
}

// NewRoleUpdate builds the body of PUT /admin/customers/{uid}/role.
func NewRoleUpdate(r Role) any {
	return roleUpdate{TargetRole: r}
}
