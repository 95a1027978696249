package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-PartyType/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go PartyType"
	AppID             = "com.github.tartampluch.go-partytype"
	KeyringService    = "com.github.tartampluch.go-partytype"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	DBFileName        = "partytype.db"
	SQLiteDriver      = "sqlite3"
	SQLiteMemory      = ":memory:"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDebug     = "debug"
	FlagDB        = "db"
	FlagLang      = "lang"
	FlagType      = "type"
	FlagFirstName = "first-name"
	FlagLastName  = "last-name"
	FlagName      = "name"
	FlagNameOrder = "name-order"
	FlagGender    = "gender"
	FlagInactive  = "inactive"
	FlagFile      = "file"
	FlagURL       = "url"
	FlagUser      = "user"
	FlagPassword  = "password"
	FlagPort      = "port"
	FlagOutput    = "output"

	FlagDescDebug     = "Enable debug logging"
	FlagDescDB        = "Path to the contact database"
	FlagDescLang      = "Language used for labels (en, fr, de, es)"
	FlagDescType      = "Contact type (organization or person)"
	FlagDescFirstName = "First name of a person"
	FlagDescLastName  = "Last name of a person"
	FlagDescName      = "Name of an organization"
	FlagDescNameOrder = "Name order (first_last, last_first, last_comma_first)"
	FlagDescGender    = "Gender of a person (male or female)"
	FlagDescInactive  = "Mark the contact as inactive"
	FlagDescFile      = "Local vCard file"
	FlagDescURL       = "CardDAV or WebDAV URL"
	FlagDescUser      = "HTTP Basic Auth username"
	FlagDescPassword  = "HTTP Basic Auth password (read from the keyring when empty)"
	FlagDescPort      = "Port of the vCard feed"
	FlagDescOutput    = "Output file (stdout when empty)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// SupportedLanguages defines the list of available label languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr", "de", "es"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyFieldType      = "field_type"
	TKeyFieldName      = "field_name"
	TKeyFieldFirstName = "field_first_name"
	TKeyFieldLastName  = "field_last_name"
	TKeyFieldNameOrder = "field_name_order"
	TKeyFieldGender    = "field_gender"
	TKeyFieldActive    = "field_active"
	TKeyHelpNameOrder  = "help_name_order"

	TKeyTypeOrganization = "type_organization"
	TKeyTypePerson       = "type_person"

	TKeyOrderLastCommaFirst = "order_last_comma_first"
	TKeyOrderFirstLast      = "order_first_last"
	TKeyOrderLastFirst      = "order_last_first"

	TKeyGenderMale   = "gender_male"
	TKeyGenderFemale = "gender_female"

	TKeyStateReadOnly = "state_readonly"
	TKeyStateRequired = "state_required"
	TKeyStateEditable = "state_editable"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultType      = "organization"
	DefaultNameOrder = "last_first"
	DefaultGender    = "male"
	DefaultActive    = true
	DefaultLanguage  = "en"
	DefaultPort      = "18081"

	SourceModeWeb   = "web"
	SourceModeLocal = "local"

	SepSpace = " "
	SepComma = ", "
)

// -----------------------------------------------------------------------------
// Packaging
// -----------------------------------------------------------------------------

const (
	ManifestFile      = "module.yaml"
	FrameworkName     = "trytond"
	DownloadBaseURL   = "http://downloads.tryton.org/"
	FormatRequirement = "%s_%s >= %d.%d, < %d.%d"
	FormatFramework   = "%s >= %d.%d, < %d.%d"
	FormatSeries      = "%d.%d"
	DefaultVersion    = "0.0.1"
	CoreModulePattern = `^(ir|res|workflow|webdav)(\W|$)`
)

// -----------------------------------------------------------------------------
// Standards: vCard
// -----------------------------------------------------------------------------

const (
	VCardUIDPrefix = "urn:partytype:"
	FormatUID      = "%s%d"
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	MinPort = 1
	MaxPort = 65535

	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 64 * 1024 * 1024 // 64MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"
	HeaderAccept          = "Accept"

	MimeTextVCard       = "text/vcard; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"
	MimeHTML            = "text/html"
	AcceptVCard         = "text/vcard, text/x-vcard;q=0.9, text/directory;q=0.8, */*;q=0.1"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty  = "configuration error: local path is empty"
	ErrWebURLEmpty     = "configuration error: web URL is empty"
	ErrFetcherMissing  = "internal error: network fetcher is not initialized"
	ErrServiceMissing  = "internal error: contact service is not initialized"
	ErrModeUnsupport   = "configuration error: unsupported source mode"
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrPortRequired    = "server port is required"
	ErrInvalidURL      = "invalid URL structure"
	ErrProtocol        = "unsupported protocol scheme (http/https only)"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrVCardEncode     = "failed to encode vCard data"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrWriteResp       = "failed to write response body"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrDBOpen          = "failed to open database"
	ErrDBSchema        = "failed to initialize schema"
	ErrDBPragma        = "failed to enable foreign keys"
	ErrContactCreate   = "failed to create contact"
	ErrContactGet      = "failed to get contact"
	ErrContactList     = "failed to list contacts"
	ErrContactUpdate   = "failed to update contact"
	ErrContactNotFound = "contact not found"
	ErrRequired        = "value is required"
	ErrInvalidValue    = "invalid value"
	ErrInvalidID       = "invalid contact id"
	ErrManifestRead    = "failed to read module manifest"
	ErrManifestVersion = "malformed module version"
	ErrKeyring         = "failed to read password from keyring"
	ErrRequest         = "failed to build request"
	ErrNetwork         = "network error during fetch"
	ErrStatus          = "server returned unexpected status"
	ErrNotVCard        = "server returned a web page instead of vCards"
	ErrTooLarge        = "response exceeds the size limit"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Contact feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop        = "Application stopped gracefully"
	MsgAppStarting    = "Starting application"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Contact feed updated"
	MsgContactCreated = "Contact created"
	MsgContactWritten = "Contact written"
	MsgTypeCleanup    = "Cleared person fields for organization"
	MsgImportStarted  = "Import started"
	MsgImportSuccess  = "Import finished"
	MsgExportSuccess  = "Export finished"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgRejectedCard   = "Skipping invalid contact"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgPassFail       = "Password retrieval failed (might be empty)"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgDBOpened       = "Database opened"
	MsgNoContacts     = "No contacts found."
	MsgFetchStatus    = "Server returned error status"
	MsgDownloading    = "Downloading vCards"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyUser      = "user"
	LogKeyID        = "id"
	LogKeyIDs       = "ids"
	LogKeyType      = "type"
	LogKeyName      = "name"
	LogKeyPath      = "path"
	LogKeyTotal     = "total_cards"
	LogKeyCreated   = "created"
	LogKeySkipped   = "skipped"
	LogKeyCount     = "count"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyStats     = "stats"
	LogKeyDuration  = "duration_ms"
	LogKeyLength    = "content_length"
	LogKeyMime      = "content_type"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompParty   = "party"
	CompStore   = "store"
	CompEngine  = "engine"
	CompServer  = "server"
	CompFetcher = "fetcher"
	CompCLI     = "cli"
	CompMain    = "main"
	CompI18n    = "i18n"
)

// -----------------------------------------------------------------------------
// Command Line Output
// -----------------------------------------------------------------------------

const (
	// FeedRefreshInterval is how often `serve` re-reads the store.
	FeedRefreshInterval = time.Minute

	ErrKeyringSave  = "failed to store password in keyring"
	ErrDBClose      = "failed to close database"
	ErrOutputFile   = "failed to open output file"
	ErrUserRequired = "a user name is required"
	ErrPortRange    = "port must be between 1 and 65535"
	MsgLangUnknown  = "Unsupported language, labels fall back to English"

	OutCreated    = "Created contact %d: %s\n"
	OutWritten    = "Updated %d contact(s)\n"
	OutImported   = "Imported %d of %d card(s), %d skipped\n"
	OutExported   = "Exported %d contact(s) to %s\n"
	OutServing    = "Serving %d contact(s) on http://%s:%s%s\n"
	OutPassSaved  = "Password for %s stored in the keyring\n"
	OutField      = "%-14s %-28s %s\n"
	OutRow        = "%d\t%s\t%s\t%s\n"
	OutHeader     = "ID\tTYPE\tNAME\tACTIVE\n"
	OutFlagMarker = "*"
)
