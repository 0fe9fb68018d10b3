package dto

import "time"

// CreateAccountRequest entrada para crear una cuenta de marketplace.
type CreateAccountRequest struct {
	Marketplace  string `json:"marketplace" validate:"required,oneof=eBay Walmart AMZ"`
	AccName      string `json:"accName" validate:"required,max=200"`
	ProfileName  string `json:"profileName" validate:"required,max=200"`
	SheetID      string `json:"sheetID,omitempty"`
	AccountInfo  string `json:"accountInfo,omitempty"`
	Proxy        string `json:"proxy,omitempty"`
	ClientID     string `json:"clientID,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
	TelegramID   string `json:"telegramId,omitempty"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended freeze"` // default active
}

// UpdateAccountRequest actualización parcial: sólo cambian los campos presentes.
// lastSync no se puede modificar aquí (ver PATCH /accounts/:id/sync).
type UpdateAccountRequest struct {
	Marketplace  *string `json:"marketplace,omitempty" validate:"omitnil,oneof=eBay Walmart AMZ"`
	AccName      *string `json:"accName,omitempty" validate:"omitnil,min=1,max=200"`
	ProfileName  *string `json:"profileName,omitempty" validate:"omitnil,min=1,max=200"`
	SheetID      *string `json:"sheetID,omitempty"`
	AccountInfo  *string `json:"accountInfo,omitempty"`
	Proxy        *string `json:"proxy,omitempty"`
	ClientID     *string `json:"clientID,omitempty"`
	ClientSecret *string `json:"clientSecret,omitempty"`
	TelegramID   *string `json:"telegramId,omitempty"`
	Status       *string `json:"status,omitempty" validate:"omitnil,oneof=active inactive suspended freeze"`
}

// AccountResponse salida de una cuenta.
type AccountResponse struct {
	ID           string     `json:"id"`
	Marketplace  string     `json:"marketplace"`
	AccName      string     `json:"accName"`
	ProfileName  string     `json:"profileName"`
	SheetID      string     `json:"sheetID,omitempty"`
	AccountInfo  string     `json:"accountInfo,omitempty"`
	Proxy        string     `json:"proxy,omitempty"`
	ClientID     string     `json:"clientID,omitempty"`
	ClientSecret string     `json:"clientSecret,omitempty"`
	TelegramID   string     `json:"telegramId,omitempty"`
	Status       string     `json:"status"`
	LastSync     *time.Time `json:"lastSync,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// AccountQuery filtros de GET /accounts.
type AccountQuery struct {
	Status      string `query:"status"`
	Marketplace string `query:"marketplace"`
}
