package model

// PairSnapshot captures the on-chain state of a constant-product pair at a
// block, plus the calculator inputs derived from it.
type PairSnapshot struct {
	ChainID     uint64 `json:"chain_id"`
	PairAddress string `json:"pair_address"`
	Token0      string `json:"token0"`
	Token1      string `json:"token1"`
	BlockNumber uint64 `json:"block_number"`
	Reserve0    string `json:"reserve0"`
	Reserve1    string `json:"reserve1"`

	// Derived inputs, after decimal scaling: price = quote/base,
	// liquidity = sqrt(base*quote).
	BaseReserve  float64 `json:"base_reserve"`
	QuoteReserve float64 `json:"quote_reserve"`
	Price        float64 `json:"price"`
	Liquidity    float64 `json:"liquidity"`
}
