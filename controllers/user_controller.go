package controllers

import (
	"net/http"

	"github.com/Syed-Bipul-Rahman/call-server/models"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Store models.UserStore
}

func NewUserController(store models.UserStore) *UserController {
	return &UserController{Store: store}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	email := c.GetString("email")
	user, err := uc.Store.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"email":    user.Email,
	})
}
