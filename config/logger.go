package config

import (
	"github.com/MonkyMars/gecho"
)

func InitializeLogger() *gecho.Logger {
	logLevel := gecho.ParseLogLevel(GetLogLevel())
	return gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))
}
