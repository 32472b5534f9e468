package cache

const (
	KeyProduct      = "products:%s"
	KeyCheckoutLock = "checkout:%s"
)
