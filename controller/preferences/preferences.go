package preferences

import (
	"net/http"

	"github.com/ahmetyanpar/orbitrates/storage"
	"github.com/ahmetyanpar/orbitrates/widget"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const defaultUser = "default"

func New(store storage.Preferences) *Preferences {
	return &Preferences{store: store}
}

type Preferences struct {
	store storage.Preferences
}

type themePayload struct {
	Theme string `json:"theme"`
}

// Theme godoc
//
//	@Summary		Get the stored theme flag
//	@Tags			preferences
//	@Param			user	query	string	false	"User id" default(default)
//	@Success		200	{object}	preferences.themePayload
//	@Router			/theme [get]
func (p *Preferences) Theme(ctx *fiber.Ctx) error {
	user := ctx.Query("user", defaultUser)

	theme, err := p.store.Theme(ctx.UserContext(), user, string(widget.ThemeLight))
	if err != nil {
		log.Error().Err(err).Str("user", user).Msg("unable to load theme preference")
		return fiber.NewError(http.StatusInternalServerError, "unable to load theme")
	}

	return ctx.JSON(themePayload{Theme: theme})
}

// SetTheme godoc
//
//	@Summary		Store the theme flag
//	@Tags			preferences
//	@Param			user	query	string					false	"User id" default(default)
//	@Param			body	body	preferences.themePayload	true	"Theme"
//	@Success		204
//	@Failure		400	{string}	string "unknown theme"
//	@Router			/theme [put]
func (p *Preferences) SetTheme(ctx *fiber.Ctx) error {
	user := ctx.Query("user", defaultUser)

	payload := themePayload{}
	if err := ctx.BodyParser(&payload); err != nil {
		return fiber.NewError(http.StatusBadRequest, "malformed body")
	}

	if payload.Theme != string(widget.ThemeLight) && payload.Theme != string(widget.ThemeDark) {
		return fiber.NewError(http.StatusBadRequest, "unknown theme")
	}

	if err := p.store.SetTheme(ctx.UserContext(), user, payload.Theme); err != nil {
		log.Error().Err(err).Str("user", user).Msg("unable to store theme preference")
		return fiber.NewError(http.StatusInternalServerError, "unable to store theme")
	}

	return ctx.SendStatus(http.StatusNoContent)
}
