// Package binio implements a little-endian binary cursor pair: a sequential
// Reader that decodes fixed-width numeric and byte-span values from an
// in-memory byte buffer while advancing an internal offset, and a sequential
// Writer that encodes the same value types by appending their encodings to a
// growing buffer.
//
// It is a low-level building block for binary protocol and file-format
// codecs, not a protocol itself. All multi-byte values are little-endian,
// floating-point values use the IEEE-754 bit layout, and byte spans are
// written raw and unframed, so callers must communicate span lengths
// out-of-band (typically by writing a length field first).
//
// Round-tripping depends entirely on caller discipline: the read order and
// types must match the write order and types. Neither type is safe for
// concurrent use without external synchronization.
package binio

import (
	"encoding/binary"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

// all multi-byte encodes and decodes in this package go through this
var byteOrder = binary.LittleEndian

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

// EnableLogging enables package logging if true is passed and disables it if
// false is passed. Logging is off by default and is only ever emitted from
// file mapping operations, never from Reader or Writer calls.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	))
}

func init() {
	logging = false
	initializeLogger()
}
