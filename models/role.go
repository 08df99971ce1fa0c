package models

type Role string

const (
	UserRole             Role = "User"
	InventoryManagerRole Role = "InventoryManager"
	RequestManagerRole   Role = "RequestManager"
	SystemManagerRole    Role = "SystemManager"
)

type NavItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}
