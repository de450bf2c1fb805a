package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/sarwaraminy/hostapi/internal/interface/http"
)

// RoomModule wires the room registry endpoints. The paths (and their lack
// of an auth guard) match the existing client contract.
type RoomModule struct {
	Handler *handlers.RoomHandler
}

func NewRoomModule(h *handlers.RoomHandler) *RoomModule {
	return &RoomModule{Handler: h}
}

func (m *RoomModule) Register(rg *gin.RouterGroup) {
	rg.GET("/rooms", m.Handler.List)
	rg.POST("/room/add", m.Handler.Add)
	rg.PUT("/room/edit/:roomNumber", m.Handler.Edit)
	rg.DELETE("/room/delete/:roomNumber", m.Handler.Delete)
}
