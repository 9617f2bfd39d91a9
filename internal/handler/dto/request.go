package dto

type CreateRequestRequest struct {
	ServiceID         string `json:"service_id" binding:"required,uuid"`
	Description       string `json:"description" binding:"required,min=10,max=500"`
	PreferredDateTime string `json:"preferred_date_time" binding:"required"`
	AddressID         string `json:"address_id" binding:"required,uuid"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required,min=5,max=200"`
}

type CreateOfferRequest struct {
	ServiceID   string  `json:"service_id" binding:"required,uuid"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Experience  string  `json:"experience"`
	Description string  `json:"description"`
}

type ToggleOfferRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type CreateAddressRequest struct {
	Line1    string `json:"line1" binding:"required"`
	City     string `json:"city" binding:"required"`
	Postcode string `json:"postcode"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Role           string `json:"role" binding:"required,oneof=customer worker admin"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
