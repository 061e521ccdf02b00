package app

import (
	customer_get "service/internal/handlers/rest/customer_get"
	customer_post "service/internal/handlers/rest/customer_post"
	customer_suite_post "service/internal/handlers/rest/customer_suite_post"
	delivery_verify_post "service/internal/handlers/rest/delivery_verify_post"
	package_delivery_code_post "service/internal/handlers/rest/package_delivery_code_post"
	package_get "service/internal/handlers/rest/package_get"
	package_post "service/internal/handlers/rest/package_post"
	package_receive_post "service/internal/handlers/rest/package_receive_post"
	package_status_put "service/internal/handlers/rest/package_status_put"
	packages_get "service/internal/handlers/rest/packages_get"
	shipment_get "service/internal/handlers/rest/shipment_get"
	shipment_packages_get "service/internal/handlers/rest/shipment_packages_get"
	shipment_post "service/internal/handlers/rest/shipment_post"
	shipment_status_put "service/internal/handlers/rest/shipment_status_put"

	shipmentService "service/internal/service/shipment"

	"service/pkg/background"
)

type Application struct {
	ServicePackages     ServicePackages
	ServiceShipment     ServiceShipment
	ServiceDeliveryAuth ServiceDeliveryAuth
	ServiceCustomer     ServiceCustomer
	BackgroundWorkers   *background.Worker
}

type ServicePackages interface {
	package_post.Service
	package_get.Service
	packages_get.Service
	package_receive_post.Service
	package_status_put.Service
	package_delivery_code_post.Service
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipment_packages_get.Service
	shipment_status_put.Service
}

type ServiceDeliveryAuth interface {
	delivery_verify_post.Service
}

type ServiceCustomer interface {
	customer_post.Service
	customer_get.Service
	customer_suite_post.Service
}

type KafkaWorkerApp struct {
	ShipmentService *shipmentService.Shipment
}
