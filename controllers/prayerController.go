package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Burgamansi/CarmoPlusUltra/models"
)

func (a *API) GetPrayers(c *gin.Context) {
	c.JSON(http.StatusOK, a.App.Cache().Prayers())
}

func (a *API) CreatePrayer(c *gin.Context) {
	var prayer models.PrayerRequest
	if err := c.ShouldBindJSON(&prayer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := a.App.AddPrayer(c.Request.Context(), prayer)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// LikePrayer registers one like tap. The new count reflects the local
// state, which may briefly run ahead of the store.
func (a *API) LikePrayer(c *gin.Context) {
	likes, err := a.App.LikePrayer(c.Request.Context(), c.Param("prayer_id"))
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error(), "likes": likes})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}
