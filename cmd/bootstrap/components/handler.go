package components

import (
	"gift-ledger/internal/handler"
	"gift-ledger/internal/handler/api"
	"gift-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCertificateHandler,
		api.NewRedemptionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
