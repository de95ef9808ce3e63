package log

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the service log file.
const (
	MaxSizeMB  = 10
	MaxBackups = 3
	MaxAgeDays = 28
)

// Setup routes the standard logger to a rotating file when serviceMode is set.
// Interactive runs keep printing to the console. The returned closer is nil
// when the output was not changed.
func Setup(logFilePath string, serviceMode bool) io.Closer {
	if !serviceMode || logFilePath == "" {
		return nil
	}

	l := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
	}
	log.SetOutput(l)
	return l
}

func Println(v ...interface{}) {
	log.Println(v...)
}

func Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

func Fatal(v ...interface{}) {
	log.Fatal(v...)
}

func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}
