package navigation

import (
	"github.com/FrumiousOwl/Teses-front-sub000/models"
)

// menus is the whole role-gating story on this side: it decides which entries
// render, not which views a user can reach. Order matters, the shell renders
// the slice as-is.
var menus = map[models.Role][]models.NavItem{
	models.UserRole: {
		{Path: "/dashboard", Label: "Dashboard", Icon: "home"},
		{Path: "/requests", Label: "My Requests", Icon: "clipboard"},
		{Path: "/account", Label: "Account", Icon: "user"},
	},
	models.InventoryManagerRole: {
		{Path: "/dashboard", Label: "Dashboard", Icon: "home"},
		{Path: "/assets", Label: "Hardware Inventory", Icon: "archive"},
		{Path: "/assets/defective", Label: "Defective Units", Icon: "alert-triangle"},
		{Path: "/assets/low-stock", Label: "Low Stock", Icon: "trending-down"},
		{Path: "/reports", Label: "Reports", Icon: "file-text"},
		{Path: "/account", Label: "Account", Icon: "user"},
	},
	models.RequestManagerRole: {
		{Path: "/dashboard", Label: "Dashboard", Icon: "home"},
		{Path: "/requests", Label: "SRRF Tickets", Icon: "clipboard"},
		{Path: "/assets", Label: "Hardware Inventory", Icon: "archive"},
		{Path: "/reports", Label: "Reports", Icon: "file-text"},
		{Path: "/account", Label: "Account", Icon: "user"},
	},
	models.SystemManagerRole: {
		{Path: "/dashboard", Label: "Dashboard", Icon: "home"},
		{Path: "/assets", Label: "Hardware Inventory", Icon: "archive"},
		{Path: "/assets/defective", Label: "Defective Units", Icon: "alert-triangle"},
		{Path: "/assets/low-stock", Label: "Low Stock", Icon: "trending-down"},
		{Path: "/requests", Label: "SRRF Tickets", Icon: "clipboard"},
		{Path: "/users", Label: "User Management", Icon: "users"},
		{Path: "/anomalies", Label: "Anomaly Logs", Icon: "activity"},
		{Path: "/reports", Label: "Reports", Icon: "file-text"},
		{Path: "/account", Label: "Account", Icon: "user"},
	},
}

// MenuFor returns the ordered menu for a role. Unknown roles get an empty
// menu, never nil.
func MenuFor(role models.Role) []models.NavItem {
	items, ok := menus[role]
	if !ok {
		return []models.NavItem{}
	}
	out := make([]models.NavItem, len(items))
	copy(out, items)
	return out
}
