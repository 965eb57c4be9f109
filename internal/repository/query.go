package repository

var userColumns = []string{
	"id",
	"name",
	"email",
	"password",
	"role",
	"provider",
	"last_login_at",
	"created_at",
	"updated_at",
}

var clientColumns = []string{
	"c.id",
	"c.store_front_name",
	"c.cnpj",
	"c.company_name",
	"c.cep",
	"c.street",
	"c.neighborhood",
	"c.city",
	"c.state",
	"c.number",
	"c.complement",
	"c.status",
	"c.phone",
	"c.email",
	"c.contact_person",
	"c.assigned_user_id",
	"c.created_at",
	"c.updated_at",
	"u.name",
	"u.email",
	"u.role",
}

const (
	clientsTable     = "clients c"
	assignedUserJoin = "users u ON u.id = c.assigned_user_id"
)
