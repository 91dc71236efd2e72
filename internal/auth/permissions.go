package auth

// Permission strings stored on roles.
const (
	PermUserDelete     = "user.delete"
	PermUserDeactivate = "user.deactivate"
	PermUserActivate   = "user.activate"
	PermRoleCreate     = "role.create"
	PermRoleModify     = "role.modify"
	PermRoleDelete     = "role.delete"
)

// AdminRoleName is the role granted to the first registered user.
const AdminRoleName = "admin"

// AdminPermissions lists every permission that marks its holder as an
// administrator.
func AdminPermissions() []string {
	return []string{
		PermUserDelete,
		PermUserDeactivate,
		PermUserActivate,
		PermRoleCreate,
		PermRoleModify,
		PermRoleDelete,
	}
}
