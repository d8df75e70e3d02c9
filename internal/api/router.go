package api

import (
	"polling-service/internal/service"
	"polling-service/internal/socket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterSocketRouters(r *gin.Engine, hub *socket.Hub) {
	r.GET("/ws/:user_id", socket.ServeWsGin(hub))
}

func RegisterHealthRouters(r *gin.Engine, db *mongo.Database) {

	handlers := NewHealthHandlers(db)

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)
	r.GET("/health/db", handlers.HealthDB)
}

func RegisterUserRouters(r *gin.Engine, userService service.UserService) {

	handlers := NewUserHandlers(userService)

	userGroup := r.Group("/api/v1/users")
	{
		userGroup.GET("", handlers.GetAllUsers)
		userGroup.POST("", handlers.CreateUser)
	}
}

func RegisterPollRouters(r *gin.Engine, pollService service.PollService) {

	handlers := NewPollHandlers(pollService)

	pollGroup := r.Group("/api/v1/polls")
	{
		pollGroup.GET("", handlers.GetAllPolls)
		pollGroup.POST("", handlers.CreatePoll)
		pollGroup.GET("/:poll_id", handlers.GetPollDetail)
	}
}

func RegisterVoteRouters(r *gin.Engine, voteService service.VoteService) {

	handlers := NewVoteHandler(voteService)

	voteGroup := r.Group("/api/v1/votes")
	{
		voteGroup.POST("", handlers.CastVote)
	}
}
