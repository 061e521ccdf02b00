//go:build wireinject
// +build wireinject

package app

import (
	"context"

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

	"service/pkg/logger"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideBacklogInterval,

		providePackagesRepository,
		provideShipmentRepository,
		provideConsolidationRepository,
		provideCustomerRepository,
		provideStaffRepository,
		provideVerificationRepository,
		provideNotificationRepository,
		provideIdentifierRepository,

		provideIdentifierGenerator,
		provideServicePackages,
		provideServiceConsolidation,
		provideServiceShipment,
		provideServiceCustomer,
		provideServiceDeliveryAuth,
		provideServiceNotification,
		provideEstimatedDeliveryFactory,

		provideNotificationBacklogTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePackages), new(*packagesService.Packages)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceDeliveryAuth), new(*deliveryauthService.DeliveryAuth)),
		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),

		wire.Bind(new(identifierService.Repository), new(*identifierRepo.Repository)),
		wire.Bind(new(packagesService.Repository), new(*packagesRepo.Repository)),
		wire.Bind(new(packagesService.IdentifierGenerator), new(*identifierService.Generator)),
		wire.Bind(new(consolidationService.Repository), new(*consolidationRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.PackageProvider), new(*packagesService.Packages)),
		wire.Bind(new(shipmentService.Linker), new(*consolidationService.Consolidation)),
		wire.Bind(new(shipmentService.EstimatedDeliveryFactory), new(*shipment_eta.EstimatedDeliveryFactory)),
		wire.Bind(new(shipmentService.IdentifierGenerator), new(*identifierService.Generator)),
		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(customerService.IdentifierGenerator), new(*identifierService.Generator)),
		wire.Bind(new(deliveryauthService.PackageRepository), new(*packagesRepo.Repository)),
		wire.Bind(new(deliveryauthService.CustomerRepository), new(*customerRepo.Repository)),
		wire.Bind(new(deliveryauthService.StaffRepository), new(*staffRepo.Repository)),
		wire.Bind(new(deliveryauthService.VerificationLog), new(*verificationRepo.Repository)),
		wire.Bind(new(deliveryauthService.NotificationRepository), new(*notificationRepo.Repository)),
		wire.Bind(new(deliveryauthService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),

		wire.Bind(new(packagesService.TxManager), new(*tx.Manager)),
		wire.Bind(new(consolidationService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(customerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryauthService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notification_backlog.Service), new(*notificationService.Notification)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		providePackagesRepository,
		provideShipmentRepository,
		provideConsolidationRepository,
		provideIdentifierRepository,

		provideIdentifierGenerator,
		provideServicePackages,
		provideServiceConsolidation,
		provideServiceShipment,
		provideEstimatedDeliveryFactory,

		wire.Bind(new(identifierService.Repository), new(*identifierRepo.Repository)),
		wire.Bind(new(packagesService.Repository), new(*packagesRepo.Repository)),
		wire.Bind(new(packagesService.IdentifierGenerator), new(*identifierService.Generator)),
		wire.Bind(new(consolidationService.Repository), new(*consolidationRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.PackageProvider), new(*packagesService.Packages)),
		wire.Bind(new(shipmentService.Linker), new(*consolidationService.Consolidation)),
		wire.Bind(new(shipmentService.EstimatedDeliveryFactory), new(*shipment_eta.EstimatedDeliveryFactory)),
		wire.Bind(new(shipmentService.IdentifierGenerator), new(*identifierService.Generator)),

		wire.Bind(new(packagesService.TxManager), new(*tx.Manager)),
		wire.Bind(new(consolidationService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
