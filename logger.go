// обертка для логирования, дополняет записи logrus аттрибутами запущенного сервиса UID,Name,Service

package lib

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ConfigLogger общий конфигуратор логирования
type ConfigLogger struct {
	// можно указывать через | разные уровни логирования, например Error|Warning
	// All - логирование всех уровней, Stdout - дублировать в консоль
	Level, Uid, Name, Srv, Config string

	File ConfigFileLogger
	// Output если задан, пишем в него (файл игнорируется)
	Output io.Writer
}

// ConfigFileLogger ротация файлов логов
type ConfigFileLogger struct {
	Enabled    bool
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type Log interface {
	Trace(args ...interface{})
	Debug(args ...interface{})
	Info(args ...interface{})
	Warning(args ...interface{})
	Error(err error, args ...interface{})
	Panic(err error, args ...interface{})
	Exit(err error, args ...interface{})

	Close()
}

type log struct {
	levels string
	entry  *logrus.Entry
	closer io.Closer
}

func (l *log) enabled(level string) bool {
	return strings.Contains(l.levels, "All") || strings.Contains(l.levels, level)
}

func (l *log) echo(level string, args []interface{}) {
	if strings.Contains(l.levels, "Stdout") {
		fmt.Printf("%s: %+v\n", level, args)
	}
}

func withError(err error, args []interface{}) []interface{} {
	if err == nil {
		return args
	}
	if args != nil {
		return append(args, "; error: ", err)
	}
	return append(args, "error: ", err)
}

func (l *log) Trace(args ...interface{}) {
	if l.enabled("Trace") {
		l.entry.Trace(args...)
		l.echo("Trace", args)
	}
}

func (l *log) Debug(args ...interface{}) {
	if l.enabled("Debug") {
		l.entry.Debug(args...)
		l.echo("Debug", args)
	}
}

func (l *log) Info(args ...interface{}) {
	if l.enabled("Info") {
		l.entry.Info(args...)
		l.echo("Info", args)
	}
}

func (l *log) Warning(args ...interface{}) {
	if l.enabled("Warning") {
		l.entry.Warn(args...)
		l.echo("Warn", args)
	}
}

func (l *log) Error(err error, args ...interface{}) {
	args = withError(err, args)
	if l.enabled("Error") {
		l.entry.Error(args...)
		l.echo("Error", args)
	}
}

func (l *log) Panic(err error, args ...interface{}) {
	args = withError(err, args)
	if l.enabled("Panic") {
		l.echo("Panic", args)
		l.entry.Panic(args...)
	}
}

// Exit логирование и прекращение работы программы
func (l *log) Exit(err error, args ...interface{}) {
	args = withError(err, args)
	if l.enabled("Fatal") {
		l.echo("Exit", args)
		l.entry.Fatal(args...)
	}
}

func (l *log) Close() {
	if l.closer != nil {
		l.closer.Close()
	}
}

// NewLogger инициируем логер: в Output, в файл с ротацией (lumberjack) или в stdout
func NewLogger(cfg ConfigLogger) (Log, error) {
	var output io.Writer = os.Stdout
	var closer io.Closer

	switch {
	case cfg.Output != nil:
		output = cfg.Output
	case cfg.File.Enabled:
		if cfg.File.Dir == "" {
			return nil, fmt.Errorf("logs dir is empty")
		}
		if err := os.MkdirAll(cfg.File.Dir, 0755); err != nil {
			return nil, fmt.Errorf("unable create logs dir (%s): %w", cfg.File.Dir, err)
		}
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.File.Dir, cfg.Srv+".log"),
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
		}
		output, closer = rotator, rotator
	}

	logrusB := logrus.New()
	logrusB.SetOutput(output)
	logrusB.SetFormatter(&logrus.JSONFormatter{})
	logrusB.SetLevel(logrus.TraceLevel)

	return &log{
		levels: cfg.Level,
		closer: closer,
		entry: logrusB.WithFields(logrus.Fields{
			"name":   cfg.Name,
			"uid":    cfg.Uid,
			"srv":    cfg.Srv,
			"config": cfg.Config,
		}),
	}, nil
}
