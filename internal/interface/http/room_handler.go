package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sarwaraminy/hostapi/internal/application"
	"github.com/sarwaraminy/hostapi/pkg/response"
)

type RoomHandler struct {
	Svc    *application.RoomService
	Logger *logrus.Logger
}

func NewRoomHandler(svc *application.RoomService, logger *logrus.Logger) *RoomHandler {
	return &RoomHandler{Svc: svc, Logger: logger}
}

type addRoomRequest struct {
	Name       string          `json:"name" binding:"required"`
	RoomNumber string          `json:"roomNumber" binding:"required"`
	BedInfo    json.RawMessage `json:"bedInfo" binding:"required"`
}

type editRoomRequest struct {
	Name    string          `json:"name" binding:"required"`
	BedInfo json.RawMessage `json:"bedInfo" binding:"required"`
}

// List handles GET /rooms.
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Add handles POST /room/add.
func (h *RoomHandler) Add(c *gin.Context) {
	var req addRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "All fields are required")
		return
	}
	room, err := h.Svc.Add(c.Request.Context(), req.Name, req.RoomNumber, req.BedInfo)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Room successfully Added", "room": room})
}

// Edit handles PUT /room/edit/:roomNumber. The room number in the path is
// the lookup key and cannot be changed.
func (h *RoomHandler) Edit(c *gin.Context) {
	var req editRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "All fields are required")
		return
	}
	room, err := h.Svc.Edit(c.Request.Context(), c.Param("roomNumber"), req.Name, req.BedInfo)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room successfully updated", "room": room})
}

// Delete handles DELETE /room/delete/:roomNumber and echoes the deleted
// room so the caller can confirm what was removed.
func (h *RoomHandler) Delete(c *gin.Context) {
	room, err := h.Svc.Delete(c.Request.Context(), c.Param("roomNumber"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room successfully deleted", "room": room})
}
