package catalog

// Actor identifica quem executa uma operação destrutiva. Vem do token da
// requisição e é passado explicitamente, nunca lido de estado ambiente.
type Actor struct {
	ID   string
	Name string
	Role string
}
