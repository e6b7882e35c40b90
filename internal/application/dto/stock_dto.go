package dto

// CreateStockEntryRequest payload de abertura de saldo (POST /estoque).
// O saldo inicial, quando positivo, entra via movimentação de entrada para
// manter o motor como único mutador de quantidades.
type CreateStockEntryRequest struct {
	ProductID       string `json:"produtoId"`
	LocationID      string `json:"localizacaoId"`
	InitialQuantity int64  `json:"quantidade"`
	Status          string `json:"status"`
	UserID          string `json:"usuarioId"`
}

// StockEntryResponse saldo de estoque com o produto embutido, como a tela de
// Gestão de Armazém consome.
type StockEntryResponse struct {
	ID       string            `json:"id"`
	Quantity int64             `json:"quantidade"`
	Status   string            `json:"status"`
	Critical bool              `json:"critico"`
	Product  ProductResponse   `json:"produto"`
	Location *LocationResponse `json:"localizacao,omitempty"`
}
