package providers

import (
	"go.uber.org/zap"
)

type ConfigProvider interface {
	LoadEnv() error
	GetAPIBaseURL() string
	GetShellPort() string
	GetCredentialFile() string
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

// CredentialStore holds the single opaque credential string. Presence of a
// non-empty value is the whole "authenticated" check on this side.
type CredentialStore interface {
	Get() string
	Set(raw string) error
	Clear() error
}
