package ds

// Tabela de usuários do sistema
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Login    string `json:"login" gorm:"type:varchar(50);unique;not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"` // hash bcrypt
	Nome     string `json:"nome" gorm:"type:varchar(100)"`
	Email    string `json:"email" gorm:"type:varchar(100)"`
	Role     int    `json:"role" gorm:"type:int;default:0;not null"` // 0 operador, 1 gerente, 2 admin
}
