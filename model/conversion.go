package model

// ConversionKind names the strategy a conversion was dispatched to.
type ConversionKind string

const (
	KindSame           ConversionKind = "same"
	KindFiat           ConversionKind = "fiat"
	KindCryptoToFiat   ConversionKind = "crypto-to-fiat"
	KindFiatToCrypto   ConversionKind = "fiat-to-crypto"
	KindCryptoToCrypto ConversionKind = "crypto-to-crypto"
)

// Failure messages surfaced in place of the converted amount.
const (
	// MsgDataMissing: upstream answered but the expected rate/price
	// field was absent, or a bridging price was zero.
	MsgDataMissing = "Conversion failed"
	// MsgFetchError: the upstream call itself failed (network error,
	// non-JSON body, unexpected status).
	MsgFetchError = "Error fetching conversion"
)

// ConversionRequest carries raw user input into the dispatcher.
// Amount stays a string until the dispatcher validates it.
type ConversionRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// ConversionResult is created fresh per request and never mutated
// after construction. On failure ConvertedAmount carries one of the
// failure messages above and OK is false; Kind still names the
// attempted strategy.
type ConversionResult struct {
	ConvertedAmount string         `json:"convertedAmount"`
	SourceAmount    string         `json:"sourceAmount"`
	Kind            ConversionKind `json:"kind"`
	AsOf            string         `json:"asOf"`
	OK              bool           `json:"ok"`
}
