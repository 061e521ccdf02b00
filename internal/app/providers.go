package app

import (
	"context"
	"time"

	"service/internal/handlers/tasks/notification_backlog"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/shipment_eta"

	consolidationRepo "service/internal/repository/consolidation"
	customerRepo "service/internal/repository/customer"
	identifierRepo "service/internal/repository/identifier"
	notificationRepo "service/internal/repository/notification"
	packagesRepo "service/internal/repository/packages"
	shipmentRepo "service/internal/repository/shipment"
	staffRepo "service/internal/repository/staff"
	verificationRepo "service/internal/repository/verification"

	consolidationService "service/internal/service/consolidation"
	customerService "service/internal/service/customer"
	deliveryauthService "service/internal/service/deliveryauth"
	identifierService "service/internal/service/identifier"
	notificationService "service/internal/service/notification"
	packagesService "service/internal/service/packages"
	shipmentService "service/internal/service/shipment"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	BacklogInterval time.Duration
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func providePackagesRepository(querier *querier.Querier) *packagesRepo.Repository {
	return packagesRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideConsolidationRepository(querier *querier.Querier) *consolidationRepo.Repository {
	return consolidationRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideStaffRepository(querier *querier.Querier) *staffRepo.Repository {
	return staffRepo.New(querier)
}

func provideVerificationRepository(querier *querier.Querier) *verificationRepo.Repository {
	return verificationRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideIdentifierRepository(querier *querier.Querier) *identifierRepo.Repository {
	return identifierRepo.New(querier)
}

func provideIdentifierGenerator(repository identifierService.Repository) *identifierService.Generator {
	return identifierService.New(repository)
}

func provideServicePackages(
	repository packagesService.Repository,
	identifiers packagesService.IdentifierGenerator,
	txManager packagesService.TxManager,
) *packagesService.Packages {
	return packagesService.New(repository, identifiers, txManager)
}

func provideServiceConsolidation(
	repository consolidationService.Repository,
	txManager consolidationService.TxManager,
) *consolidationService.Consolidation {
	return consolidationService.New(repository, txManager)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	packageProvider shipmentService.PackageProvider,
	linker shipmentService.Linker,
	etaFactory shipmentService.EstimatedDeliveryFactory,
	identifiers shipmentService.IdentifierGenerator,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(
		repository,
		packageProvider,
		linker,
		etaFactory,
		identifiers,
		txManager,
	)
}

func provideServiceCustomer(
	repository customerService.Repository,
	identifiers customerService.IdentifierGenerator,
	txManager customerService.TxManager,
) *customerService.Customer {
	return customerService.New(repository, identifiers, txManager)
}

func provideServiceDeliveryAuth(
	packages deliveryauthService.PackageRepository,
	customers deliveryauthService.CustomerRepository,
	staff deliveryauthService.StaffRepository,
	verificationLog deliveryauthService.VerificationLog,
	notifications deliveryauthService.NotificationRepository,
	shipments deliveryauthService.ShipmentService,
	txManager deliveryauthService.TxManager,
) *deliveryauthService.DeliveryAuth {
	return deliveryauthService.New(
		packages,
		customers,
		staff,
		verificationLog,
		notifications,
		shipments,
		txManager,
	)
}

func provideServiceNotification(repository notificationService.Repository) *notificationService.Notification {
	return notificationService.New(repository)
}

func provideBacklogInterval(cfg *config.Config) BacklogInterval {
	return BacklogInterval(cfg.Tasks.NotificationBacklogInterval)
}

func provideNotificationBacklogTask(
	log logger.Logger,
	notificationService notification_backlog.Service,
	interval BacklogInterval,
) *notification_backlog.NotificationBacklog {
	return notification_backlog.NewNotificationBacklog(log, notificationService, time.Duration(interval))
}

func provideTaskList(
	notificationBacklogTask *notification_backlog.NotificationBacklog,
) []background.Task {
	return []background.Task{
		notificationBacklogTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideEstimatedDeliveryFactory() *shipment_eta.EstimatedDeliveryFactory {
	return shipment_eta.New()
}
