package entity

import "time"

// Marketplaces soportados.
const (
	MarketplaceEbay    = "eBay"
	MarketplaceWalmart = "Walmart"
	MarketplaceAmazon  = "AMZ"
)

// Estados de Account.
const (
	AccountStatusActive    = "active"
	AccountStatusInactive  = "inactive"
	AccountStatusSuspended = "suspended"
	AccountStatusFreeze    = "freeze"
)

// Marketplaces lista ordenada de marketplaces válidos.
var Marketplaces = []string{MarketplaceEbay, MarketplaceWalmart, MarketplaceAmazon}

// Account cuenta de vendedor en un marketplace.
// LastSync sólo la escribe la operación de sincronización, nunca el update general.
type Account struct {
	ID          string
	Marketplace string // eBay, Walmart, AMZ
	AccName     string // único
	ProfileName string
	SheetID     string
	AccountInfo string
	Proxy       string
	ClientID    string
	// ClientSecret credencial del marketplace; se guarda tal cual.
	ClientSecret string
	TelegramID   string
	Status       string
	LastSync     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
