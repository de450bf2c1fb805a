package router

import (
	"github.com/sarwaraminy/hostapi/internal/application"
	"github.com/sarwaraminy/hostapi/internal/container"
	pginfra "github.com/sarwaraminy/hostapi/internal/infrastructure/postgres"
	handlers "github.com/sarwaraminy/hostapi/internal/interface/http"
	"github.com/sarwaraminy/hostapi/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and adds them to the registry. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	authSvc := application.NewAuthService(
		pginfra.NewUserRepository(pool),
		container.GetJWT(),
		logger,
	)
	roomSvc := application.NewRoomService(
		pginfra.NewRoomRepository(pool),
		container.GetRedis(),
		logger,
	)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), container.GetJWT()))
	r.Add(modules.NewRoomModule(handlers.NewRoomHandler(roomSvc, logger)))
}
