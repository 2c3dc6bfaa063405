package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*zap.SugaredLogger
	file *lumberjack.Logger
}

type Options struct {
	Level string
	JSON  bool
	// File, when set, receives JSON logs rotated by lumberjack.
	File   string
	Output io.Writer
}

func New(opts Options) (*Logger, error) {
	level := zapcore.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(productionEncoderConfig())
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}
	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(out), level)}

	l := &Logger{}
	if opts.File != "" {
		fileName := opts.File
		if !strings.HasSuffix(fileName, ".log") {
			fileName += ".log"
		}
		l.file = &lumberjack.Logger{
			Filename: fileName,
			MaxSize:  10, // megabytes
			Compress: true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(productionEncoderConfig()), zapcore.AddSync(l.file), level))
	}

	l.SugaredLogger = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	return l, nil
}

func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func productionEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.TimeKey = "timestamp"
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	return config
}
