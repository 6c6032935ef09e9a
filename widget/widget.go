// Package widget owns the presentation-layer state of the converter
// form: amount text, currency selection, theme, and the last
// conversion result. The dispatcher stays stateless; every state
// transition and result-invalidation rule lives here.
package widget

import (
	"context"
	"errors"

	"github.com/ahmetyanpar/orbitrates/model"
	"github.com/ahmetyanpar/orbitrates/service/dispatcher"
)

// Theme is the persisted light/dark flag.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Converter abstracts the conversion dispatcher.
type Converter interface {
	Convert(ctx context.Context, req model.ConversionRequest) (model.ConversionResult, error)
}

// State holds the form. Zero value is not usable; use New.
type State struct {
	amount string
	from   string
	to     string
	theme  Theme
	result *model.ConversionResult
}

func New() *State {
	return &State{from: "USD", to: "EUR", theme: ThemeLight}
}

func (s *State) Amount() string { return s.amount }
func (s *State) From() string   { return s.from }
func (s *State) To() string     { return s.to }
func (s *State) Theme() Theme   { return s.theme }

// Result returns the last conversion result, or nil when none is
// displayed.
func (s *State) Result() *model.ConversionResult { return s.result }

// SetAmount replaces the amount text without validating it; validation
// happens at dispatch time.
func (s *State) SetAmount(amount string) {
	s.amount = amount
}

// ClearAmount empties the amount and discards the displayed result.
func (s *State) ClearAmount() {
	s.amount = ""
	s.reset()
}

// SelectFrom changes the source currency and discards the displayed
// result.
func (s *State) SelectFrom(symbol string) {
	s.from = symbol
	s.reset()
}

// SelectTo changes the target currency and discards the displayed
// result.
func (s *State) SelectTo(symbol string) {
	s.to = symbol
	s.reset()
}

// Swap exchanges the two currencies and discards the displayed result.
// It never performs a conversion by itself.
func (s *State) Swap() {
	s.from, s.to = s.to, s.from
	s.reset()
}

// ToggleTheme flips between light and dark.
func (s *State) ToggleTheme() {
	if s.theme == ThemeLight {
		s.theme = ThemeDark
		return
	}
	s.theme = ThemeLight
}

// SetTheme installs a previously persisted theme; anything but dark
// falls back to light.
func (s *State) SetTheme(t Theme) {
	if t == ThemeDark {
		s.theme = ThemeDark
		return
	}
	s.theme = ThemeLight
}

// Convert runs the current form through the dispatcher and installs
// the fresh result. An invalid amount is a no-op: the previously
// displayed result stays as is.
func (s *State) Convert(ctx context.Context, conv Converter) error {
	res, err := conv.Convert(ctx, model.ConversionRequest{
		Amount: s.amount,
		From:   s.from,
		To:     s.to,
	})
	if err != nil {
		if errors.Is(err, dispatcher.ErrInvalidAmount) {
			return nil
		}
		return err
	}

	s.result = &res
	return nil
}

func (s *State) reset() {
	s.result = nil
}
