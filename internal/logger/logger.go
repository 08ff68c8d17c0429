package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. В production JSON формат и уровень info, иначе текст и debug.
func New(output io.Writer, production bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	// перезаписываем ряд настроек для окружений отличных от продакшн
	if !production {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(new(logrus.TextFormatter))
	}

	return l
}
