package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("quantidade inválida")
	ErrInsufficientStock  = errors.New("saldo de estoque insuficiente")
	ErrDuplicateSKU       = errors.New("já existe um produto com este SKU")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrReferenced         = errors.New("registro em uso por estoque ou movimentações")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrStorageUnavailable = errors.New("armazenamento indisponível")
)
