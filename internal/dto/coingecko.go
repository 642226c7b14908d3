package dto

// SimplePriceResponse mirrors CoinGecko's /simple/price payload:
// {"cardano":{"usd":0.45}} keyed by asset id, then by currency.
type SimplePriceResponse map[string]map[string]float64
