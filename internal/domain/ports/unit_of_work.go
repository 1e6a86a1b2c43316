package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// WithTransaction executa fn dentro de uma única transação: commit se fn
// retornar nil, rollback caso contrário. O contexto recebido por fn carrega
// a transação e deve ser repassado aos repositórios.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
