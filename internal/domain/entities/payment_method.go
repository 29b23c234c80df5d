package entities

// PaymentMethod representa um método de pagamento de um usuário.
// No máximo um método por usuário pode ter IsDefault = true; a troca de
// padrão é feita em uma única transação (limpar e definir).
type PaymentMethod struct {
	Base
	UserID    string `json:"user_id" gorm:"column:user_id;index"`
	Label     string `json:"label" gorm:"column:label"`
	Gateway   string `json:"gateway" gorm:"column:gateway"`
	IsDefault bool   `json:"is_default" gorm:"column:is_default;default:false"`
}
