package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name           string
	Phone          string
	Role           Role
	TelegramChatID *int64
}

// Address is a service location owned by a user. Requests reference an
// address of their customer; the ownership check happens at request creation.
type Address struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Line1     string    `json:"line1"`
	City      string    `json:"city"`
	Postcode  string    `json:"postcode"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAddressInput struct {
	UserID   string
	Line1    string
	City     string
	Postcode string
}
