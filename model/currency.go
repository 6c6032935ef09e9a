package model

import (
	"errors"
	"fmt"
)

// unexported type to disable any new types
type currency string

const (
	Fiat   currency = currency("FIAT")   // Fiat represents physical currency
	Crypto currency = currency("CRYPTO") // Crypto represents crypto currency
)

// ErrUnknownSymbol signals a symbol outside both currency sets.
// Hitting it past input validation means a programming error,
// not a user-facing condition.
var ErrUnknownSymbol = errors.New("unknown currency symbol")

// FiatSymbols is the closed set of supported fiat currencies.
var FiatSymbols = []string{"USD", "EUR", "GBP", "JPY", "TRY", "AUD", "CAD"}

// CryptoSymbols is the closed set of supported crypto currencies.
var CryptoSymbols = []string{"BTC", "ETH", "LTC", "DOGE", "BNB", "SOL", "XRP"}

// coinIDs maps crypto symbols to the pricing service's canonical slugs.
var coinIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"LTC":  "litecoin",
	"DOGE": "dogecoin",
	"BNB":  "binancecoin",
	"SOL":  "solana",
	"XRP":  "ripple",
}

var fiatSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(FiatSymbols))
	for _, s := range FiatSymbols {
		m[s] = struct{}{}
	}
	return m
}()

// IsCrypto reports whether symbol belongs to the crypto set.
func IsCrypto(symbol string) bool {
	_, ok := coinIDs[symbol]
	return ok
}

// IsFiat reports whether symbol belongs to the fiat set.
func IsFiat(symbol string) bool {
	_, ok := fiatSet[symbol]
	return ok
}

// Known reports whether symbol belongs to either set.
func Known(symbol string) bool {
	return IsFiat(symbol) || IsCrypto(symbol)
}

// CoinID resolves a crypto symbol to the pricing service's slug.
// Must only be called with symbols from the crypto set.
func CoinID(symbol string) (string, error) {
	id, ok := coinIDs[symbol]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	return id, nil
}

// TypeOf returns the currency type for a known symbol.
func TypeOf(symbol string) (currency, error) {
	switch {
	case IsFiat(symbol):
		return Fiat, nil
	case IsCrypto(symbol):
		return Crypto, nil
	}
	return currency(""), fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
}
