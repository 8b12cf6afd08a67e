package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Burgamansi/CarmoPlusUltra/models"
)

func (a *API) GetMembers(c *gin.Context) {
	c.JSON(http.StatusOK, a.App.Cache().Members())
}

// CreateMember saves a new couple. When the request carries a postal
// code but no coordinates, the address is geocoded here first; a
// geocoding failure is logged and the save proceeds with the
// ungeocoded (0,0) default.
func (a *API) CreateMember(c *gin.Context) {
	var member models.Member
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !member.Geocoded() && member.CEP != "" && a.Geocoder != nil {
		fullAddress := fmt.Sprintf("%s, %s, %s - %s, Brazil",
			member.Address, member.Neighborhood, member.City, member.State)
		lat, lng, err := a.Geocoder.Search(c.Request.Context(), fullAddress)
		if err != nil {
			log.Printf("controllers: geocoding member address failed: %v", err)
		} else {
			member.Geo_Lat = lat
			member.Geo_Lng = lng
		}
	}

	saved, err := a.App.AddMember(c.Request.Context(), member)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// LookupCEP proxies the postal-code lookup so the form can autofill
// address fields.
func (a *API) LookupCEP(c *gin.Context) {
	if a.Geocoder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Geocoding is not available"})
		return
	}

	result, err := a.Geocoder.LookupCEP(c.Request.Context(), c.Param("cep"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
