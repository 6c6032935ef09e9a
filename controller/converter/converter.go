package converter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ahmetyanpar/orbitrates/model"
	"github.com/ahmetyanpar/orbitrates/service/dispatcher"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Dispatcher is the slice of the conversion dispatcher the controller
// needs.
type Dispatcher interface {
	Convert(ctx context.Context, req model.ConversionRequest) (model.ConversionResult, error)
}

func New(d Dispatcher) *Converter {
	return &Converter{dispatcher: d}
}

type Converter struct {
	dispatcher Dispatcher
}

// Convert godoc
//
//	@Summary		Convert between fiat and crypto currencies
//	@Description	converts amount from one currency to another, bridging crypto pairs through USD
//	@Tags			converter
//	@Param			from	query	string	true	"From Currency" example(BTC)
//	@Param			to		query	string	true	"To Currency"   example(USD)
//	@Param			amount	query	string	true	"Amount"        example(3.1)
//	@Success		200	{object}	model.ConversionResult
//	@Failure		400	{string}	string "amount is empty or not a number"
//	@Router			/convert [get]
func (c *Converter) Convert(ctx *fiber.Ctx) error {
	req := model.ConversionRequest{
		Amount: ctx.Query("amount"),
		From:   strings.ToUpper(ctx.Query("from")),
		To:     strings.ToUpper(ctx.Query("to")),
	}

	result, err := c.dispatcher.Convert(ctx.UserContext(), req)
	if err != nil {
		if errors.Is(err, dispatcher.ErrInvalidAmount) || errors.Is(err, model.ErrUnknownSymbol) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		log.Error().Err(err).Str(req.From, req.To).Msg("conversion dispatch failed")
		return fiber.NewError(http.StatusInternalServerError, "internal error")
	}

	log.Debug().
		Str(req.From, req.To).
		Str("amount", req.Amount).
		Str("kind", string(result.Kind)).
		Bool("ok", result.OK).
		Msg("converted")

	return ctx.JSON(result)
}

// Currencies godoc
//
//	@Summary		List supported currencies
//	@Description	returns the fiat and crypto symbol groups for the selection controls
//	@Tags			converter
//	@Success		200	{object}	map[string][]string
//	@Router			/currencies [get]
func (c *Converter) Currencies(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"fiat":   model.FiatSymbols,
		"crypto": model.CryptoSymbols,
	})
}
