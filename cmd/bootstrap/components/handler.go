package components

import (
	"hotel-simulator/internal/handler"
	"hotel-simulator/internal/handler/api"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		func() *gin.Engine {
			return gin.New()
		},
	),
	fx.Invoke(handler.NewRouter),
)
