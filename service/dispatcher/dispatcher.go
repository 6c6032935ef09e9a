package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetyanpar/orbitrates/model"
	"github.com/ahmetyanpar/orbitrates/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// ErrInvalidAmount signals an empty or non-numeric amount. The caller
// must treat it as a no-op: no network call was made and no result was
// produced, so any previously displayed result stays valid.
var ErrInvalidAmount = errors.New("amount is empty or not a number")

// Dispatcher routes a conversion request to one of five strategies
// (identity, fiat-fiat, crypto-fiat, fiat-crypto, crypto-crypto) and
// normalizes the outcome into a ConversionResult. It holds no mutable
// state besides the in-flight coalescing group.
type Dispatcher struct {
	fiat   service.FiatRates
	crypto service.CryptoPrices
	group  singleflight.Group
}

func New(fiat service.FiatRates, crypto service.CryptoPrices) *Dispatcher {
	return &Dispatcher{fiat: fiat, crypto: crypto}
}

// Convert classifies the request and performs the matching upstream
// calls. Upstream failures come back as a not-ok ConversionResult,
// never as an error; the error return covers only invalid amounts and
// symbols outside both currency sets.
//
// Concurrent calls with identical amount/from/to share a single
// upstream flight.
func (d *Dispatcher) Convert(ctx context.Context, req model.ConversionRequest) (model.ConversionResult, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return model.ConversionResult{}, err
	}

	if !model.Known(req.From) {
		return model.ConversionResult{}, fmt.Errorf("%w: %s", model.ErrUnknownSymbol, req.From)
	}

	if !model.Known(req.To) {
		return model.ConversionResult{}, fmt.Errorf("%w: %s", model.ErrUnknownSymbol, req.To)
	}

	key := req.From + "/" + req.To + "/" + req.Amount

	v, err, shared := d.group.Do(key, func() (interface{}, error) {
		res, err := d.dispatch(ctx, amount, req)
		if err != nil {
			return model.ConversionResult{}, err
		}
		return res, nil
	})
	if err != nil {
		return model.ConversionResult{}, err
	}

	if shared {
		log.Debug().Str("key", key).Msg("conversion joined an in-flight request")
	}

	return v.(model.ConversionResult), nil
}

func (d *Dispatcher) dispatch(ctx context.Context, amount float64, req model.ConversionRequest) (model.ConversionResult, error) {
	if req.From == req.To {
		return model.ConversionResult{
			ConvertedAmount: "1",
			SourceAmount:    req.Amount,
			Kind:            model.KindSame,
			AsOf:            today(),
			OK:              true,
		}, nil
	}

	fromCrypto := model.IsCrypto(req.From)
	toCrypto := model.IsCrypto(req.To)

	log.Debug().
		Str(req.From, req.To).
		Float64("amount", amount).
		Bool("fromCrypto", fromCrypto).
		Bool("toCrypto", toCrypto).
		Msg("dispatching conversion")

	switch {
	case !fromCrypto && !toCrypto:
		return d.fiatToFiat(ctx, req)
	case fromCrypto && !toCrypto:
		return d.cryptoToFiat(ctx, amount, req)
	case !fromCrypto && toCrypto:
		return d.fiatToCrypto(ctx, amount, req)
	default:
		return d.cryptoToCrypto(ctx, amount, req)
	}
}

func (d *Dispatcher) fiatToFiat(ctx context.Context, req model.ConversionRequest) (model.ConversionResult, error) {
	quote, err := d.fiat.Latest(ctx, req.Amount, req.From, req.To)
	if err != nil {
		log.Error().Err(err).Str(req.From, req.To).Msg("unable to fetch fiat rate")
		return fetchFailure(req, model.KindFiat), nil
	}

	value, ok := quote.Rates[req.To]
	if !ok {
		return dataFailure(req, model.KindFiat), nil
	}

	return model.ConversionResult{
		ConvertedAmount: formatFiat(value),
		SourceAmount:    req.Amount,
		Kind:            model.KindFiat,
		AsOf:            quote.Date,
		OK:              true,
	}, nil
}

func (d *Dispatcher) cryptoToFiat(ctx context.Context, amount float64, req model.ConversionRequest) (model.ConversionResult, error) {
	id, err := model.CoinID(req.From)
	if err != nil {
		return model.ConversionResult{}, err
	}

	vs := strings.ToLower(req.To)

	prices, err := d.crypto.SimplePrice(ctx, []string{id}, []string{vs})
	if err != nil {
		log.Error().Err(err).Str(req.From, req.To).Msg("unable to fetch crypto price")
		return fetchFailure(req, model.KindCryptoToFiat), nil
	}

	price, ok := prices.Price(id, vs)
	if !ok {
		return dataFailure(req, model.KindCryptoToFiat), nil
	}

	return model.ConversionResult{
		ConvertedAmount: formatFiat(price * amount),
		SourceAmount:    req.Amount,
		Kind:            model.KindCryptoToFiat,
		AsOf:            today(),
		OK:              true,
	}, nil
}

func (d *Dispatcher) fiatToCrypto(ctx context.Context, amount float64, req model.ConversionRequest) (model.ConversionResult, error) {
	id, err := model.CoinID(req.To)
	if err != nil {
		return model.ConversionResult{}, err
	}

	vs := strings.ToLower(req.From)

	prices, err := d.crypto.SimplePrice(ctx, []string{id}, []string{vs})
	if err != nil {
		log.Error().Err(err).Str(req.From, req.To).Msg("unable to fetch crypto price")
		return fetchFailure(req, model.KindFiatToCrypto), nil
	}

	price, ok := prices.Price(id, vs)
	if !ok || price == 0 {
		return dataFailure(req, model.KindFiatToCrypto), nil
	}

	return model.ConversionResult{
		ConvertedAmount: formatCrypto(amount / price),
		SourceAmount:    req.Amount,
		Kind:            model.KindFiatToCrypto,
		AsOf:            today(),
		OK:              true,
	}, nil
}

// cryptoToCrypto bridges through USD: the pricing service exposes no
// direct crypto-to-crypto rates.
func (d *Dispatcher) cryptoToCrypto(ctx context.Context, amount float64, req model.ConversionRequest) (model.ConversionResult, error) {
	fromID, err := model.CoinID(req.From)
	if err != nil {
		return model.ConversionResult{}, err
	}

	toID, err := model.CoinID(req.To)
	if err != nil {
		return model.ConversionResult{}, err
	}

	prices, err := d.crypto.SimplePrice(ctx, []string{fromID, toID}, []string{"usd"})
	if err != nil {
		log.Error().Err(err).Str(req.From, req.To).Msg("unable to fetch crypto prices")
		return fetchFailure(req, model.KindCryptoToCrypto), nil
	}

	fromUSD, fromOK := prices.Price(fromID, "usd")
	toUSD, toOK := prices.Price(toID, "usd")

	if !fromOK || !toOK || toUSD == 0 {
		return dataFailure(req, model.KindCryptoToCrypto), nil
	}

	rate := fromUSD / toUSD

	return model.ConversionResult{
		ConvertedAmount: formatCrypto(amount * rate),
		SourceAmount:    req.Amount,
		Kind:            model.KindCryptoToCrypto,
		AsOf:            today(),
		OK:              true,
	}, nil
}

func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, ErrInvalidAmount
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidAmount
	}

	return v, nil
}

// formatFiat renders fiat-denominated values, formatCrypto renders
// crypto-denominated ones. Crypto results are typically fractional
// and need the finer precision.
func formatFiat(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

func formatCrypto(v float64) string { return strconv.FormatFloat(v, 'f', 8, 64) }

func today() string { return time.Now().UTC().Format("2006-01-02") }

func dataFailure(req model.ConversionRequest, kind model.ConversionKind) model.ConversionResult {
	return model.ConversionResult{
		ConvertedAmount: model.MsgDataMissing,
		SourceAmount:    req.Amount,
		Kind:            kind,
	}
}

func fetchFailure(req model.ConversionRequest, kind model.ConversionKind) model.ConversionResult {
	return model.ConversionResult{
		ConvertedAmount: model.MsgFetchError,
		SourceAmount:    req.Amount,
		Kind:            kind,
	}
}
