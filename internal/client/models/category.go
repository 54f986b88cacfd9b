package models

// Category groups tasks; owned by the current user.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	UserID    int64     `json:"user_id"`
	CreatedAt Timestamp `json:"created_at"`
}

// CategoryCreate is the payload for creating a category.
type CategoryCreate struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryUpdate carries partial category fields.
type CategoryUpdate struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}
