package logging

import (
	"fmt"

	"github.com/JonWolf1234/current-rms-schedule/internal/config"
)

// Manager manages the logging system initialization and configuration
type Manager struct {
	logger *MultiLogger
}

// NewManager creates a new logging manager
func NewManager() *Manager {
	return &Manager{
		logger: NewMultiLogger(),
	}
}

// Initialize initializes the logging system from configuration
func (m *Manager) Initialize(cfg *config.Config) error {
	m.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	if err := m.logger.AddAdapter(NewStdoutAdapter("stdout", cfg.Logging.Format)); err != nil {
		return fmt.Errorf("failed to add stdout adapter: %w", err)
	}

	if cfg.Logging.FilePath != "" {
		fileAdapter, err := NewFileAdapter("file", cfg.Logging.Format, cfg.Logging.FilePath)
		if err != nil {
			return fmt.Errorf("failed to create file adapter: %w", err)
		}
		if err := m.logger.AddAdapter(fileAdapter); err != nil {
			return fmt.Errorf("failed to add file adapter: %w", err)
		}
	}

	return nil
}

// GetLogger returns the initialized logger
func (m *Manager) GetLogger() Logger {
	return m.logger
}

// Close closes the logging system
func (m *Manager) Close() error {
	if m.logger != nil {
		return m.logger.Close()
	}
	return nil
}

// Global manager instance
var globalManager *Manager

// InitializeLogging initializes the global logging system
func InitializeLogging(cfg *config.Config) error {
	globalManager = NewManager()
	return globalManager.Initialize(cfg)
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	if globalManager == nil {
		// Fallback to a basic logger if not initialized
		manager := NewManager()
		manager.logger.AddAdapter(NewStdoutAdapter("fallback_stdout", "json"))
		globalManager = manager
	}
	return globalManager.GetLogger()
}

// CloseLogging closes the global logging system
func CloseLogging() error {
	if globalManager != nil {
		return globalManager.Close()
	}
	return nil
}

// LogWithRequestID creates a logger with request ID context
func LogWithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}
