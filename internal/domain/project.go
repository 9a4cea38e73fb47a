package domain

type Project struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	AdminID   string `json:"admin_id"`
	CreatedOn string `json:"created_on"`
}

type ProjectUserRole string

const (
	ProjectUserRoleAdmin  ProjectUserRole = "ADMIN"
	ProjectUserRoleMember ProjectUserRole = "MEMBER"
)

type ProjectUser struct {
	ProjectID int32           `json:"project_id"`
	UserID    string          `json:"user_id"`
	Role      ProjectUserRole `json:"role"`
	JoinedOn  string          `json:"joined_on"`
}
