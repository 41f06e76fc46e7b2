package forms

import "inmogestor-backend/internal/models"

// UserForm is the body of the Add User dialog.
type UserForm struct {
	Name   string            `json:"name" validate:"required"`
	Email  string            `json:"email" validate:"required,email"`
	Phone  string            `json:"phone" validate:"required"`
	Role   models.UserRole   `json:"role" validate:"userrole"`
	Status models.UserStatus `json:"status" validate:"userstatus"`
}

var userMessages = map[string]string{
	"name":   "El nombre es requerido",
	"email":  "Email inválido",
	"phone":  "El teléfono es requerido",
	"role":   "Selecciona un rol",
	"status": "Selecciona un estado",
}

func DefaultUserForm() UserForm {
	return UserForm{Role: models.RoleOperator, Status: models.UserActive}
}

func (f *UserForm) Validate() map[string]string {
	return Check(f, userMessages)
}

// User builds the account that would be created.
func (f *UserForm) User(createdAt string) models.User {
	return models.User{
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Role:      f.Role,
		Status:    f.Status,
		CreatedAt: createdAt,
	}
}

var UserToast = Toast{Title: "Usuario creado", Description: "El usuario se ha creado exitosamente."}

func UserSchema() Schema {
	roles := make([]Option, 0, len(models.UserRoles))
	for _, r := range models.UserRoles {
		roles = append(roles, Option{Value: string(r), Label: r.Badge().Label})
	}
	statuses := make([]Option, 0, len(models.UserStatuses))
	for _, s := range models.UserStatuses {
		statuses = append(statuses, Option{Value: string(s), Label: s.Badge().Label})
	}

	return Schema{
		Title: "Crear Nuevo Usuario",
		Fields: []Field{
			{Name: "name", Label: "Nombre Completo", Type: "text", Required: true},
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "phone", Label: "Teléfono", Type: "text", Required: true},
			{Name: "role", Label: "Rol del Usuario", Type: "select", Required: true, Options: roles},
			{Name: "status", Label: "Estado del Usuario", Type: "select", Required: true, Options: statuses},
		},
		Defaults: DefaultUserForm(),
	}
}
