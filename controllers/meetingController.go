package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Burgamansi/CarmoPlusUltra/models"
)

func (a *API) GetMeetings(c *gin.Context) {
	c.JSON(http.StatusOK, a.App.Cache().Meetings())
}

// GetNextMeeting returns the closest future meeting, with its host
// resolved from the directory when the reference is still valid.
func (a *API) GetNextMeeting(c *gin.Context) {
	meeting, ok := a.App.Cache().NextMeeting(time.Now())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No upcoming meeting scheduled"})
		return
	}

	response := gin.H{"meeting": meeting}
	if host, ok := a.App.Cache().MemberByID(meeting.Host_Couple_ID); ok {
		response["host"] = host
	}
	c.JSON(http.StatusOK, response)
}

// GetMeetingSongs renders the meeting's playlist. Song ids that no
// longer resolve are simply absent from the response.
func (a *API) GetMeetingSongs(c *gin.Context) {
	meeting, ok := a.App.Cache().MeetingByID(c.Param("meeting_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}

	c.JSON(http.StatusOK, a.App.Cache().SongsFor(meeting))
}

func (a *API) CreateMeeting(c *gin.Context) {
	var meeting models.Meeting
	if err := c.ShouldBindJSON(&meeting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := a.App.AddMeeting(c.Request.Context(), meeting)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (a *API) UpdateMeeting(c *gin.Context) {
	var meeting models.Meeting
	if err := c.ShouldBindJSON(&meeting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meeting.Meeting_ID = c.Param("meeting_id")

	saved, err := a.App.UpdateMeeting(c.Request.Context(), meeting)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}
