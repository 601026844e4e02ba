package role

// Role define o nível de acesso do usuário no sistema
type Role int

const (
	Operador Role = iota // acesso básico (consultas e OS)
	Gerente              // gestão de orçamentos, propostas e contratos
	Admin                // acesso total, incluindo configurações e backup
)

func (r Role) String() string {
	switch r {
	case Operador:
		return "operador"
	case Gerente:
		return "gerente"
	case Admin:
		return "admin"
	}
	return "desconhecido"
}
