package errors

import "errors"

const (
	// ErrWrapFormat wraps a sentinel with an underlying cause.
	ErrWrapFormat = "%w: %w"
	// ErrStringWrappingFormat wraps a sentinel with a string detail.
	ErrStringWrappingFormat = "%w: %s"
)

// Configuration.
var (
	ErrLoadConfig          = errors.New("failed to load tokenicon configuration")
	ErrInvalidColor        = errors.New("invalid color")
	ErrInvalidConfigValue  = errors.New("invalid configuration value")
	ErrBundledResource     = errors.New("bundled resource could not be loaded")
	ErrXDGDirectoryFailure = errors.New("failed to create XDG directory")
)

// Icon resolution.
var (
	ErrFetchFailed        = errors.New("remote image fetch failed")
	ErrHTTPRequestFailed  = errors.New("HTTP request failed")
	ErrHTTPStatus         = errors.New("unexpected HTTP status")
	ErrResponseTooLarge   = errors.New("response body exceeds size limit")
	ErrUnsupportedImage   = errors.New("unsupported image content type")
	ErrImageDecode        = errors.New("failed to decode image")
	ErrImageEncode        = errors.New("failed to encode image")
	ErrInvalidImageSize   = errors.New("invalid target image size")
	ErrCustomIconDecode   = errors.New("custom icon entry could not be decoded")
	ErrCustomIconNotFound = errors.New("no custom icon assigned to issuer")
	ErrEmptyIssuer        = errors.New("issuer must not be empty")
	ErrNoBrandMatch       = errors.New("issuer does not match a known brand")
)

// Cache.
var (
	ErrCacheDirectoryCreation = errors.New("failed to create cache directory")
	ErrCacheRead              = errors.New("failed to read from cache")
	ErrCacheWrite             = errors.New("failed to write to cache")
	ErrCacheLocked            = errors.New("cache file is locked")
)

// Stores.
var (
	ErrStoreKeyNotFound   = errors.New("key not found in store")
	ErrStoreTypeNotFound  = errors.New("store type not found")
	ErrStoreOptions       = errors.New("failed to parse store options")
	ErrStoreConnection    = errors.New("failed to connect to store")
	ErrStoreRead          = errors.New("failed to read from store")
	ErrStoreWrite         = errors.New("failed to write to store")
	ErrSerializeValue     = errors.New("failed to serialize value")
	ErrDeserializeValue   = errors.New("failed to deserialize value")
	ErrMissingStoreOption = errors.New("required store option is missing")
)

// Tokens and edit sessions.
var (
	ErrTokenNotFound       = errors.New("token not found")
	ErrTokenExists         = errors.New("token already exists")
	ErrTokenIDRequired     = errors.New("token id is required")
	ErrTokenStoreRead      = errors.New("failed to read token store")
	ErrTokenStoreWrite     = errors.New("failed to write token store")
	ErrLockingUnsupported  = errors.New("token locking is not supported")
	ErrInvalidRange        = errors.New("replacement range is outside the field text")
	ErrUnknownField        = errors.New("field is not bound to a token attribute")
	ErrNoToken             = errors.New("edit session has no token")
	ErrSessionClosing      = errors.New("edit session is closing")
	ErrConfirmationFailure = errors.New("confirmation prompt failed")
	ErrNotInteractive      = errors.New("confirmation requires an interactive terminal")
)

// Retry.
var (
	ErrRetryExhausted = errors.New("retry attempts exhausted")
	ErrRetryTimeout   = errors.New("retry timeout exceeded")
)
