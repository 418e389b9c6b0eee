package models

// NFT is one token owned by a wallet, as reported by the NFT provider.
type NFT struct {
	ContractAddress string `json:"contract_address"`
	TokenID         string `json:"token_id"`
	TokenType       string `json:"token_type,omitempty"`
	Title           string `json:"title"`
	ImageURL        string `json:"image_url,omitempty"`
	Balance         string `json:"balance"`
}
