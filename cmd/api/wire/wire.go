//go:build wireinject
// +build wireinject

package wire

import (
	authhttpapi "atlas-cms/internal/auth/httpapi"
	authpersistence "atlas-cms/internal/auth/persistence"
	authusecases "atlas-cms/internal/auth/usecases"
	contenthttpapi "atlas-cms/internal/content/httpapi"
	contentpersistence "atlas-cms/internal/content/persistence"
	contentusecases "atlas-cms/internal/content/usecases"
	dashboardhttpapi "atlas-cms/internal/dashboard/httpapi"
	dashboardpersistence "atlas-cms/internal/dashboard/persistence"
	dashboardusecases "atlas-cms/internal/dashboard/usecases"
	"atlas-cms/internal/infra/httpserver"
	mediahttpapi "atlas-cms/internal/media/httpapi"
	mediapersistence "atlas-cms/internal/media/persistence"
	mediausecases "atlas-cms/internal/media/usecases"
	planshttpapi "atlas-cms/internal/plans/httpapi"
	planspersistence "atlas-cms/internal/plans/persistence"
	plansusecases "atlas-cms/internal/plans/usecases"

	"github.com/google/wire"
)

var GuardSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	provideCache,
	provideTokenService,
	authpersistence.NewUserRepository,
	wire.Bind(new(authusecases.UserRepository), new(*authpersistence.SimpleUserRepository)),
	authusecases.NewUserService,
	wire.Bind(new(authusecases.UserService), new(*authusecases.SimpleUserService)),
	authusecases.NewSessionService,
	wire.Bind(new(authusecases.SessionService), new(*authusecases.SimpleSessionService)),
	authhttpapi.NewSessionGuard,
	wire.Bind(new(httpserver.Guard), new(*authhttpapi.SessionGuard)),
)

func InitializeAuthController() (*authhttpapi.AuthController, error) {
	wire.Build(
		GuardSet,
		provideLoginLimiter,
		authhttpapi.NewAuthController,
	)
	return nil, nil
}

func InitializeUserController() (*authhttpapi.UserController, error) {
	wire.Build(
		GuardSet,
		authhttpapi.NewUserController,
	)
	return nil, nil
}

func InitializeContentTypeController() (*contenthttpapi.ContentTypeController, error) {
	wire.Build(
		GuardSet,
		contentpersistence.NewContentTypeRepository,
		wire.Bind(new(contentusecases.ContentTypeRepository), new(*contentpersistence.SimpleContentTypeRepository)),
		contentpersistence.NewEntryRepository,
		wire.Bind(new(contentusecases.EntryRepository), new(*contentpersistence.SimpleEntryRepository)),
		contentusecases.NewContentTypeService,
		wire.Bind(new(contentusecases.ContentTypeService), new(*contentusecases.SimpleContentTypeService)),
		contenthttpapi.NewContentTypeController,
	)
	return nil, nil
}

func InitializeEntryController() (*contenthttpapi.EntryController, error) {
	wire.Build(
		GuardSet,
		contentpersistence.NewContentTypeRepository,
		wire.Bind(new(contentusecases.ContentTypeRepository), new(*contentpersistence.SimpleContentTypeRepository)),
		contentpersistence.NewEntryRepository,
		wire.Bind(new(contentusecases.EntryRepository), new(*contentpersistence.SimpleEntryRepository)),
		contentusecases.NewEntryService,
		wire.Bind(new(contentusecases.EntryService), new(*contentusecases.SimpleEntryService)),
		contenthttpapi.NewEntryController,
	)
	return nil, nil
}

func InitializeAssetController() (*mediahttpapi.AssetController, error) {
	wire.Build(
		GuardSet,
		provideBlobStore,
		provideMaxUploadBytes,
		mediapersistence.NewAssetRepository,
		wire.Bind(new(mediausecases.AssetRepository), new(*mediapersistence.SimpleAssetRepository)),
		mediausecases.NewAssetService,
		wire.Bind(new(mediausecases.AssetService), new(*mediausecases.SimpleAssetService)),
		mediahttpapi.NewAssetController,
	)
	return nil, nil
}

func InitializePlanController() (*planshttpapi.PlanController, error) {
	wire.Build(
		GuardSet,
		planspersistence.NewPlanRepository,
		wire.Bind(new(plansusecases.PlanRepository), new(*planspersistence.SimplePlanRepository)),
		plansusecases.NewPlanService,
		wire.Bind(new(plansusecases.PlanService), new(*plansusecases.SimplePlanService)),
		planshttpapi.NewPlanController,
	)
	return nil, nil
}

func InitializeStatsController() (*dashboardhttpapi.StatsController, error) {
	wire.Build(
		GuardSet,
		provideStatsDatabase,
		dashboardpersistence.NewStatsRepository,
		wire.Bind(new(dashboardusecases.StatsRepository), new(*dashboardpersistence.SimpleStatsRepository)),
		dashboardusecases.NewStatsService,
		wire.Bind(new(dashboardusecases.StatsService), new(*dashboardusecases.SimpleStatsService)),
		dashboardhttpapi.NewStatsController,
	)
	return nil, nil
}
