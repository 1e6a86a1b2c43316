package entities

// User representa um usuário do sistema.
// Usuários nunca são removidos: a desativação apenas marca IsActive como false.
type User struct {
	ID       uint
	UserName string
	Email    string
	Password string // opaco, armazenado como recebido
	IsActive bool
}

// Deactivate marca o usuário como inativo (soft delete)
func (u *User) Deactivate() {
	u.IsActive = false
}

// Reactivate reativa um usuário desativado sem alterar os demais campos
func (u *User) Reactivate() {
	u.IsActive = true
}

// Replace substitui todos os campos editáveis do usuário
func (u *User) Replace(userName, email, password string) {
	u.UserName = userName
	u.Email = email
	u.Password = password
}
