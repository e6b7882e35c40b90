package repository

// SequenceRepository aloca códigos sequenciais legíveis por prefixo (RE, RS, PC).
// Next deve ser chamado dentro da transação que grava o documento, para que o
// código seja único e ordenado pela criação mesmo sob concorrência.
type SequenceRepository interface {
	Next(prefix string) (int64, error)
}
