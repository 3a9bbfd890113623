package utils

import (
	"fmt"

	"k8s.io/klog/v2"
)

type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

type SimpleLogger struct{}

func NewSimpleLogger() *SimpleLogger {
	return &SimpleLogger{}
}

func (l *SimpleLogger) Info(msg string)  { fmt.Println("INFO: " + msg) }
func (l *SimpleLogger) Warn(msg string)  { fmt.Println("WARN: " + msg) }
func (l *SimpleLogger) Error(msg string) { fmt.Println("ERROR: " + msg) }

type SilentLogger struct{}

func (l *SilentLogger) Info(msg string)  {}
func (l *SilentLogger) Warn(msg string)  {}
func (l *SilentLogger) Error(msg string) {}

// KlogLogger routes messages through klog so the binary picks up klog's
// -v/-logtostderr flags. Info lines go to verbosity 2 to keep the interactive
// console quiet by default.
type KlogLogger struct{}

func NewKlogLogger() *KlogLogger {
	return &KlogLogger{}
}

func (l *KlogLogger) Info(msg string)  { klog.V(2).Info(msg) }
func (l *KlogLogger) Warn(msg string)  { klog.Warning(msg) }
func (l *KlogLogger) Error(msg string) { klog.Error(msg) }
