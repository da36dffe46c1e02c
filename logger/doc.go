// Package logger provides structured logging for the eureka client
// library using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("eureka").WithComponent("identity")
//	log.Info("identity refreshed", map[string]interface{}{"host": host})
package logger
