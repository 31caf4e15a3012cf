package logger

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/sirupsen/logrus"
)

// WatermillAdapter адаптирует Logger к watermill.LoggerAdapter
type WatermillAdapter struct {
	entry *logrus.Entry
}

// Watermill возвращает адаптер для роутера и pub/sub watermill
func (l *Logger) Watermill() watermill.LoggerAdapter {
	return &WatermillAdapter{entry: l.entry.WithField("component", "watermill")}
}

func (a *WatermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.entry.WithFields(logrus.Fields(fields)).WithError(err).Error(msg)
}

func (a *WatermillAdapter) Info(msg string, fields watermill.LogFields) {
	a.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

func (a *WatermillAdapter) Debug(msg string, fields watermill.LogFields) {
	a.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (a *WatermillAdapter) Trace(msg string, fields watermill.LogFields) {
	a.entry.WithFields(logrus.Fields(fields)).Trace(msg)
}

func (a *WatermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillAdapter{entry: a.entry.WithFields(logrus.Fields(fields))}
}
