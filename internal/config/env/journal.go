package env

import (
	"os"

	"satta_backend/internal/config"
)

const (
	journalPathEnvName = "JOURNAL_PATH"
	defaultJournalPath = "journal.db"
)

type journalConfig struct {
	path string
}

// NewJournalConfig Путь к sqlite-файлу журнала циклов
func NewJournalConfig() (config.JournalConfig, error) {
	path := os.Getenv(journalPathEnvName)
	if len(path) == 0 {
		path = defaultJournalPath
	}
	return &journalConfig{path: path}, nil
}

func (cfg *journalConfig) Path() string {
	return cfg.path
}
