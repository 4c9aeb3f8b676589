// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAdminAccessDenied      = "admin.access_denied"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Cart
	KeyCartItemAdded   = "cart.item_added"
	KeyCartItemRemoved = "cart.item_removed"
	KeyCartUpdated     = "cart.updated"
	KeyCartCleared     = "cart.cleared"
	KeyCartEmpty       = "cart.empty"

	// Contact
	KeyContactReceived = "contact.received"

	// Files
	KeyFileUploadFailed = "file.upload_failed"
)
