// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"sync"

	"go.uber.org/zap"
)

// Telemetry receives string properties describing an operation.
type Telemetry interface {
	SetProperty(key, value string)
}

var (
	_ Telemetry = (*MapTelemetry)(nil)
	_ Telemetry = (*LoggerTelemetry)(nil)
)

// MapTelemetry stores properties in memory.
type MapTelemetry struct {
	props map[string]string
	mu    sync.RWMutex
}

// NewMapTelemetry returns an empty MapTelemetry.
func NewMapTelemetry() *MapTelemetry {
	return &MapTelemetry{props: make(map[string]string)}
}

// SetProperty implements Telemetry.
func (t *MapTelemetry) SetProperty(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.props[key] = value
}

// Properties returns a copy of the recorded properties.
func (t *MapTelemetry) Properties() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make(map[string]string, len(t.props))
	for k, v := range t.props {
		result[k] = v
	}
	return result
}

// LoggerTelemetry writes each property as a debug log entry.
type LoggerTelemetry struct {
	logger *zap.Logger
}

// NewLoggerTelemetry returns a Telemetry that logs to logger.
func NewLoggerTelemetry(logger *zap.Logger) *LoggerTelemetry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggerTelemetry{logger: logger.Named("telemetry")}
}

// SetProperty implements Telemetry.
func (t *LoggerTelemetry) SetProperty(key, value string) {
	t.logger.Debug("property", zap.String("key", key), zap.String("value", value))
}
