package repositories

import "errors"

// Erros de armazenamento compartilhados pelas implementações.
// As camadas superiores os traduzem para erros de domínio.
var (
	// ErrDuplicateKey é retornado quando uma restrição de unicidade é violada
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferenced é retornado quando uma chave estrangeira impede a operação
	// (por exemplo, remover um planeta que ainda é favorito de alguém)
	ErrReferenced = errors.New("referenced by dependent records")
)

// ErrRecordNotFound é retornado por Delete quando não há linha com o id
var ErrRecordNotFound = errors.New("record not found")
