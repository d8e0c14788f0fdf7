package repository

import "context"

// Factory hands out entity repositories backed by one storage facade.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
	Compliance() ComplianceRepository
	Payments() PaymentRepository
	Notifications() NotificationRepository
	Ping(ctx context.Context) error
}
