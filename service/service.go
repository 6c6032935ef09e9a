package service

import "context"

// FiatQuote is the fiat-rate service's answer for a single
// amount/from/to query. Rates are already scaled by the requested
// amount.
type FiatQuote struct {
	Rates map[string]float64 // target symbol -> converted value
	Date  string             // reference date, YYYY-MM-DD
}

// PriceTable holds spot prices keyed by coin id, then by quote
// currency code (lower case).
type PriceTable map[string]map[string]float64

// Price looks up a single cell of the table. The second return is
// false when either the coin or the quote currency is absent.
func (p PriceTable) Price(id, vs string) (float64, bool) {
	quotes, ok := p[id]
	if !ok {
		return 0, false
	}
	v, ok := quotes[vs]
	return v, ok
}

// FiatRates interface describes
// method specs for obtaining fiat exchange rates
type FiatRates interface {
	// Latest returns the converted value of amount units of `from`
	// quoted in `to`, plus the reference date of the rate
	Latest(ctx context.Context, amount, from, to string) (FiatQuote, error)
}

// CryptoPrices interface describes
// method specs for obtaining crypto spot prices
type CryptoPrices interface {
	// SimplePrice returns spot prices for the given coin ids quoted
	// in the given currencies (lower-case codes)
	SimplePrice(ctx context.Context, ids, vsCurrencies []string) (PriceTable, error)
}
