package converter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahmetyanpar/orbitrates/model"
	"github.com/ahmetyanpar/orbitrates/service/dispatcher"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dispatcherStub struct {
	result model.ConversionResult
	err    error
	last   model.ConversionRequest
}

func (d *dispatcherStub) Convert(_ context.Context, req model.ConversionRequest) (model.ConversionResult, error) {
	d.last = req
	return d.result, d.err
}

func newApp(d Dispatcher) *fiber.App {
	app := fiber.New()
	c := New(d)
	app.Get("/convert", c.Convert)
	app.Get("/currencies", c.Currencies)
	return app
}

func TestConvertHandler(t *testing.T) {
	stub := &dispatcherStub{result: model.ConversionResult{
		ConvertedAmount: "92.3456",
		SourceAmount:    "100",
		Kind:            model.KindFiat,
		AsOf:            "2024-01-01",
		OK:              true,
	}}
	app := newApp(stub)

	req := httptest.NewRequest(http.MethodGet, "/convert?amount=100&from=usd&to=eur", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result model.ConversionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "92.3456", result.ConvertedAmount)
	assert.Equal(t, model.KindFiat, result.Kind)
	assert.True(t, result.OK)

	// symbols are upper-cased before dispatch
	assert.Equal(t, "USD", stub.last.From)
	assert.Equal(t, "EUR", stub.last.To)
}

func TestConvertHandlerFailureResultIsStill200(t *testing.T) {
	stub := &dispatcherStub{result: model.ConversionResult{
		ConvertedAmount: model.MsgFetchError,
		SourceAmount:    "1",
		Kind:            model.KindCryptoToCrypto,
	}}
	app := newApp(stub)

	req := httptest.NewRequest(http.MethodGet, "/convert?amount=1&from=BTC&to=ETH", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result model.ConversionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.False(t, result.OK)
	assert.Equal(t, model.MsgFetchError, result.ConvertedAmount)
}

func TestConvertHandlerBadRequests(t *testing.T) {
	tests := []struct {
		name string
		err  error
		url  string
	}{
		{"invalid amount", dispatcher.ErrInvalidAmount, "/convert?amount=abc&from=USD&to=EUR"},
		{"unknown symbol", model.ErrUnknownSymbol, "/convert?amount=1&from=ZZZ&to=EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(&dispatcherStub{err: tt.err})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCurrenciesHandler(t *testing.T) {
	app := newApp(&dispatcherStub{})

	req := httptest.NewRequest(http.MethodGet, "/currencies", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var groups map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&groups))

	assert.ElementsMatch(t, model.FiatSymbols, groups["fiat"])
	assert.ElementsMatch(t, model.CryptoSymbols, groups["crypto"])
}
