package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Burgamansi/CarmoPlusUltra/cache"
	"github.com/Burgamansi/CarmoPlusUltra/controllers"
	"github.com/Burgamansi/CarmoPlusUltra/initializers"
	"github.com/Burgamansi/CarmoPlusUltra/middlewares"
	"github.com/Burgamansi/CarmoPlusUltra/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectStore()
	initializers.ConnectScratchpad()
	services.InitEmailService()
	services.InitGeocodeService()
}

func main() {
	app := services.NewApp(initializers.AppStore, cache.New())

	// One bulk load per session; everything after this serves from
	// memory and writes through optimistically.
	app.Initialize(context.Background())

	api := controllers.NewAPI(
		app,
		services.NewNotesService(initializers.Scratchpad),
		services.GetGeocodeService(),
	)

	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, getKey), api.Ping)
	router.POST("/login", middlewares.RateLimitMiddleware(2, 2, getKey), api.Login)

	// directory, schedule, songbook, board, gallery: open reads
	router.GET("/members", api.GetMembers)
	router.GET("/meetings", api.GetMeetings)
	router.GET("/meetings/next", api.GetNextMeeting)
	router.GET("/meetings/:meeting_id/songs", api.GetMeetingSongs)
	router.GET("/songs", api.GetSongs)
	router.GET("/prayers", api.GetPrayers)
	router.GET("/liturgy", api.GetLiturgy)
	router.GET("/media", api.GetMedia)
	router.GET("/feedbacks", api.GetFeedbacks)

	// member-facing writes, throttled
	writes := router.Group("/")
	writes.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		writes.POST("/members", api.CreateMember)
		writes.POST("/meetings", api.CreateMeeting)
		writes.PUT("/meetings/:meeting_id", api.UpdateMeeting)
		writes.POST("/songs", api.CreateSong)
		writes.POST("/prayers", api.CreatePrayer)
		writes.POST("/prayers/:prayer_id/like", api.LikePrayer)
		writes.POST("/media", api.CreateMedia)
		writes.POST("/feedbacks", api.CreateFeedback)

		writes.GET("/lookup/cep/:cep", api.LookupCEP)

		writes.GET("/notes/:note_key", api.GetNote)
		writes.PUT("/notes/:note_key", api.SaveNote)
		writes.DELETE("/notes/:note_key", api.DeleteNote)
	}

	// coordinator only
	admin := router.Group("/")
	admin.Use(middlewares.CheckAuth)
	admin.Use(middlewares.CheckAdmin)
	admin.Use(middlewares.RateLimitMiddleware(5, 5, getKey))
	{
		admin.PUT("/liturgy", api.UpdateLiturgy)
		admin.POST("/admin/refresh", api.Refresh)
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
