package ports

import "go.trai.ch/obtools/internal/core/domain"

// ConfigStore reads and writes obfuscator config files.
//
// Reads of a missing file return defaults. Writes merge onto an existing file
// and never drop content they do not own.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	ReadBase(path string) (*domain.BaseConfig, error)
	WriteBase(path string, cfg *domain.BaseConfig) error
	ReadRun(path string) (*domain.RunConfig, error)
	WriteRun(path string, cfg *domain.RunConfig) error
}
