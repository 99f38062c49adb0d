package components

import (
	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/pkg/clock"
	"gift-ledger/internal/pkg/config"
	"gift-ledger/internal/usecase/commands"
	"gift-ledger/internal/usecase/queries"
	"gift-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (*certificate.CodeGenerator, error) {
		return certificate.NewCodeGenerator(cfg.Ledger.CodePrefix, cfg.Ledger.CodeMaxAttempts)
	},
	fx.Annotate(
		func(cfg config.Config) *commands.AllowListPolicy {
			return commands.NewAllowListPolicy(cfg.Ledger.AllowedForms)
		},
		fx.As(new(commands.RedemptionPolicy)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewIssuanceUseCase,
		commands.NewAdminUseCase,
		func(uow shared.UnitOfWork, clk clock.Clock, policy commands.RedemptionPolicy, cfg config.Config) commands.RedemptionCommands {
			return commands.NewRedemptionUseCase(uow, clk, policy, cfg.Ledger.RedeemMaxAttempts)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCertificateQueries,
	),
)
