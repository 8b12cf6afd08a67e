package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Burgamansi/CarmoPlusUltra/models"
)

func (a *API) GetMedia(c *gin.Context) {
	c.JSON(http.StatusOK, a.App.Cache().Media())
}

// CreateMedia saves a gallery item. Images arrive with their pixel
// data embedded as a data URI; videos as remote links. The conversion
// from file to data URI is the uploader's job, not ours.
func (a *API) CreateMedia(c *gin.Context) {
	var item models.MediaItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := a.App.AddMedia(c.Request.Context(), item)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}
