package model

// QuoteRecord is the serializable form of one computed quote: the inputs,
// the derived reserves on both sides of the hypothetical trade, and the
// trade result. All amounts are raw float64 values; display formatting is
// applied elsewhere.
type QuoteRecord struct {
	Liquidity    float64 `json:"liquidity"`
	InitialPrice float64 `json:"initial_price"`
	FinalPrice   float64 `json:"final_price"`
	FeePercent   float64 `json:"fee_percent"`

	InitialBaseReserves  float64 `json:"initial_base_reserves"`
	InitialQuoteReserves float64 `json:"initial_quote_reserves"`
	FinalBaseReserves    float64 `json:"final_base_reserves"`
	FinalQuoteReserves   float64 `json:"final_quote_reserves"`
	Invariant            float64 `json:"invariant"`

	PriceDelta        float64 `json:"price_delta"`
	BaseWalletDelta   float64 `json:"base_wallet_delta"`
	QuoteWalletDelta  float64 `json:"quote_wallet_delta"`
	BaseFeeCollected  float64 `json:"base_fee_collected"`
	QuoteFeeCollected float64 `json:"quote_fee_collected"`

	ComputedAt string `json:"computed_at"`
}
