package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nardinjo/borsh/models"
)

// InfoHandler serves the static home-screen content.
type InfoHandler struct {
	info models.HotelInfo
}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{info: models.DefaultHotelInfo()}
}

// Get handles GET /api/info
func (h *InfoHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}
