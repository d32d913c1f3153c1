package view

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role"`
	Blocked   bool   `json:"blocked"`
	CreatedAt string `json:"createdAt"`
}
