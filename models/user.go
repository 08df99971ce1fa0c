package models

// UserAccount is the row shown in user administration. RoleID and RoleName are
// filled client-side by joining /User with /user-role/all on the user id; a user
// with no row in the role collection keeps the zero values.
type UserAccount struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phoneNumber"`
	RoleID   int    `json:"roleId"`
	RoleName string `json:"roleName"`
}

type UserRoleAssignment struct {
	UserID   int    `json:"userId"`
	RoleID   int    `json:"roleId"`
	RoleName string `json:"roleName"`
}
