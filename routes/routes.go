package routes

import (
	"net/http"

	"github.com/Syed-Bipul-Rahman/call-server/controllers"
	"github.com/Syed-Bipul-Rahman/call-server/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(auth *controllers.AuthController, call *controllers.CallController, user *controllers.UserController, secret []byte) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.POST("/send-call", call.SendCall)

	protected := r.Group("/user")
	protected.Use(middlewares.AuthMiddleware(secret))
	{
		protected.GET("/profile", user.GetProfile)
	}

	return r
}
