package domain

// Role user role in the university system
type Role string

const (
	RoleStudent      Role = "STUDENT"
	RoleAdminStudent Role = "ADMIN_STUDENT"
	RoleTeacher      Role = "TEACHER"
	RoleAdminTeacher Role = "ADMIN_TEACHER"
	RoleAdmin        Role = "ADMIN"
)

// StudentRoles roles allowed to hold a booking slot
var StudentRoles = []Role{RoleStudent, RoleAdminStudent}

// TeacherRoles roles allowed to manage defence sessions and slots
var TeacherRoles = []Role{RoleTeacher, RoleAdminTeacher}

// IsValid returns true for a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAdminStudent, RoleTeacher, RoleAdminTeacher, RoleAdmin:
		return true
	}
	return false
}

// IsStudent returns true if the role may choose a booking slot
func (r Role) IsStudent() bool {
	return r == RoleStudent || r == RoleAdminStudent
}

// User represents a university user (read-only here)
type User struct {
	ID        int64
	Username  string
	Email     string
	Firstname string
	Lastname  string
	Role      Role
	Status    string
}

// IsStudent returns true if the user may choose a booking slot
func (u *User) IsStudent() bool {
	return u.Role.IsStudent()
}
