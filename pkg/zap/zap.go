// Package zap wraps the sugared uber-go logger behind the small interface the
// rest of the service consumes.
package zap

import (
	uzap "go.uber.org/zap"
)

type Logger interface {
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
	Sync() error
}

type logger struct {
	sugar *uzap.SugaredLogger
}

func NewLogger() Logger {
	return &logger{
		sugar: uzap.Must(uzap.NewProduction()).Sugar(),
	}
}

func (l *logger) Info(args ...interface{})                    { l.sugar.Info(args...) }
func (l *logger) Infof(template string, args ...interface{})  { l.sugar.Infof(template, args...) }
func (l *logger) Warn(args ...interface{})                    { l.sugar.Warn(args...) }
func (l *logger) Warnf(template string, args ...interface{})  { l.sugar.Warnf(template, args...) }
func (l *logger) Error(args ...interface{})                   { l.sugar.Error(args...) }
func (l *logger) Errorf(template string, args ...interface{}) { l.sugar.Errorf(template, args...) }
func (l *logger) Fatalf(template string, args ...interface{}) { l.sugar.Fatalf(template, args...) }
func (l *logger) Sync() error                                 { return l.sugar.Sync() }
