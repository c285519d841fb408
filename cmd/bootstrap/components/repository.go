package components

import (
	repo_impl "dealdesk/internal/infra/repository"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewDealRepository,
			fx.As(new(commands.DealRepository)),
			fx.As(new(queries.DealViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewMenuItemRepository,
			fx.As(new(queries.MenuItemViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
	),
)
