package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupObserved() *observer.ObservedLogs {
	core, logs := observer.New(zap.DebugLevel)
	sugar = zap.New(core).Sugar()
	return logs
}

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, sugar)
}

func TestInfo(t *testing.T) {
	logs := setupObserved()

	Info("test message", "key1", "value1")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "test message", entries[0].Message)
	assert.Equal(t, "value1", entries[0].ContextMap()["key1"])
}

func TestInfof(t *testing.T) {
	logs := setupObserved()

	Infof("test %s", "message")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "test message", entries[0].Message)
}

func TestError(t *testing.T) {
	logs := setupObserved()

	Error("test error", "error", assert.AnError)

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
}

func TestDebugf(t *testing.T) {
	logs := setupObserved()

	Debugf("test %s", "debug")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "test debug", entries[0].Message)
}
