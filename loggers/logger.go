package loggers

import "github.com/sirupsen/logrus"

var Logger *logrus.Logger

func Init() {
	Logger = logrus.New()
	Logger.SetLevel(logrus.InfoLevel)
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
