package models

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleOperator UserRole = "operator"
)

// UserRoles lists the selectable roles in display order.
var UserRoles = []UserRole{RoleAdmin, RoleManager, RoleOperator}

// Badge falls back to the operator badge for unknown roles.
func (r UserRole) Badge() Badge {
	switch r {
	case RoleAdmin:
		return Badge{Label: "Administrador", Variant: VariantDefault, ClassName: classPrimary}
	case RoleManager:
		return Badge{Label: "Gestor", Variant: VariantSecondary, ClassName: "bg-secondary text-secondary-foreground"}
	}
	return Badge{Label: "Operador", Variant: VariantOutline}
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

var UserStatuses = []UserStatus{UserActive, UserInactive}

// Badge renders anything other than active as Inactivo.
func (s UserStatus) Badge() Badge {
	if s == UserActive {
		return Badge{Label: "Activo", Variant: VariantDefault, ClassName: classSuccess}
	}
	return Badge{Label: "Inactivo", Variant: VariantSecondary}
}

// User is a staff account of the agency.
type User struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	LastLogin string     `json:"lastLogin"`
	CreatedAt string     `json:"createdAt"`

	PasswordHash string `json:"-"`
}

func (u User) SearchFields() []string {
	return []string{u.Name, u.Email, string(u.Role)}
}

type UserStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Admins    int `json:"admins"`
	Operators int `json:"operators"`
}

// LoginRequest contains the credentials for authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that login credentials are present.
func (r *LoginRequest) Validate() map[string]string {
	errors := map[string]string{}

	if r.Username == "" {
		errors["username"] = "El usuario es requerido"
	}
	if r.Password == "" {
		errors["password"] = "La contraseña es requerida"
	}

	return errors
}

// Session is the identity carried in the issued token.
type Session struct {
	UserID string   `json:"userId"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
}

// AuthResponse is sent back after a successful login.
type AuthResponse struct {
	Token string  `json:"token"`
	User  Session `json:"user"`
}
