package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Burgamansi/CarmoPlusUltra/models"
	"github.com/Burgamansi/CarmoPlusUltra/store"
)

func meetingFixtures() *store.MemoryStore {
	s := store.NewMemoryStore()
	s.Seed("members", "m1", map[string]interface{}{
		"husband_name": "João", "wife_name": "Maria",
	})
	s.Seed("songs", "s1", map[string]interface{}{"title": "Abide"})
	s.Seed("meetings", "mt1", map[string]interface{}{
		"date": "2099-09-05T19:30:00Z", "host_couple_id": "m1",
		"music_list": []interface{}{"s1", "deleted-song"},
	})
	return s
}

func TestGetMeetings(t *testing.T) {
	api := SetupTestAPI(t, meetingFixtures())

	c, w := SetupTestContext()
	api.GetMeetings(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var meetings []models.Meeting
	DecodeResponse(t, w, &meetings)
	assert.Len(t, meetings, 1)
	assert.Equal(t, "m1", meetings[0].Host_Couple_ID)
}

func TestGetNextMeetingResolvesHost(t *testing.T) {
	api := SetupTestAPI(t, meetingFixtures())

	c, w := SetupTestContext()
	api.GetNextMeeting(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Meeting models.Meeting `json:"meeting"`
		Host    models.Member  `json:"host"`
	}
	DecodeResponse(t, w, &resp)
	assert.Equal(t, "mt1", resp.Meeting.Meeting_ID)
	assert.Equal(t, "João", resp.Host.Husband_Name)
}

func TestGetNextMeetingWhenNoneScheduled(t *testing.T) {
	api := SetupTestAPI(t, store.NewMemoryStore())

	c, w := SetupTestContext()
	api.GetNextMeeting(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMeetingSongsDropsDanglingIDs(t *testing.T) {
	api := SetupTestAPI(t, meetingFixtures())

	c, w := SetupTestContext()
	c.Params = append(c.Params, gin.Param{Key: "meeting_id", Value: "mt1"})
	api.GetMeetingSongs(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var songs []models.Song
	DecodeResponse(t, w, &songs)
	assert.Len(t, songs, 1)
	assert.Equal(t, "Abide", songs[0].Title)
}

func TestCreateMeeting(t *testing.T) {
	tests := []struct {
		name           string
		meeting        models.Meeting
		expectedStatus int
	}{
		{
			name:           "valid meeting",
			meeting:        models.Meeting{Date: "2026-09-05T19:30:00Z", Host_Couple_ID: "m1"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing host",
			meeting:        models.Meeting{Date: "2026-09-05T19:30:00Z"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := SetupTestAPI(t, store.NewMemoryStore())

			c, w := SetupTestContext()
			WithJSONBody(t, c, http.MethodPost, tt.meeting)
			api.CreateMeeting(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUpdateMeeting(t *testing.T) {
	api := SetupTestAPI(t, meetingFixtures())

	c, w := SetupTestContext()
	c.Params = append(c.Params, gin.Param{Key: "meeting_id", Value: "mt1"})
	WithJSONBody(t, c, http.MethodPut, models.Meeting{
		Date: "2099-09-05T19:30:00Z", Host_Couple_ID: "m1", Address: "New street",
	})
	api.UpdateMeeting(c)

	assert.Equal(t, http.StatusOK, w.Code)

	updated, ok := api.App.Cache().MeetingByID("mt1")
	assert.True(t, ok)
	assert.Equal(t, "New street", updated.Address)
}
