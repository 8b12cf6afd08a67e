// Package controllers exposes the application over HTTP. Reads come
// straight from the domain cache; writes go through the mutation
// intents on the services layer. Gateway failures map to 502, since
// the optimistic local change already took and the caller only needs
// to know the durable write did not.
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Burgamansi/CarmoPlusUltra/services"
	"github.com/Burgamansi/CarmoPlusUltra/store"
)

// API aggregates the handlers' dependencies. The cache is owned by the
// App and reached only through it; nothing here holds its own copy of
// domain state.
type API struct {
	App      *services.App
	Notes    *services.NotesService
	Geocoder *services.GeocodeService
}

func NewAPI(app *services.App, notes *services.NotesService, geocoder *services.GeocodeService) *API {
	return &API{App: app, Notes: notes, Geocoder: geocoder}
}

func (a *API) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"ready":   a.App.Cache().Ready(),
	})
}

// writeStatus picks the response code for a mutation intent's error.
func writeStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingField), errors.Is(err, services.ErrInvalidField):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrStoreUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
