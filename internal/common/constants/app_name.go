package constants

const (
	AppUserService         = "user-service"
	AppCatalogService      = "catalog-service"
	AppCartService         = "cart-service"
	AppOrderService        = "order-service"
	AppNotificationService = "notification-service"
	AppMain                = "furnspace"

	AudienceUser = "furnspace-user"
)

const (
	ChannelEmailOtp           = "email:otp"
	ChannelEmailOrderCreated  = "email:order_created"
	ChannelEmailResetPassword = "email:reset_password"
	ChannelEmailContact       = "email:contact"
)
