package log

const (
	KeyAppName       = "app"
	KeyRequestID     = "requestId"
	KeyProcess       = "process"
	KeyTag           = "tag"
	KeyConfig        = "config"
	KeyToken         = "token"
	KeyEmail         = "email"
	KeyUserID        = "userId"
	KeyCartID        = "cartId"
	KeyOrderID       = "orderId"
	KeyOrderStatus   = "orderStatus"
	KeyPaymentStatus = "paymentStatus"
	KeyProductID     = "productId"
	KeyCategoryID    = "categoryId"
	KeyAddressID     = "addressId"
	KeyQuantity      = "quantity"
	KeyTotalPrice    = "totalPrice"
	KeyCacheKey      = "cacheKey"
	KeyChannel       = "channel"
	KeyDbURL         = "dbUrl"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
)
