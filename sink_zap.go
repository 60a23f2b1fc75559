package httpscribe

import (
	"go.uber.org/zap"

	"github.com/oshokin/httpscribe/internal/logger"
)

// ZapSink is a Sink backed by a zap logger. The payload is rendered as
// structured fields so downstream encoders keep the record shape intact.
type ZapSink struct {
	// logger is the underlying zap logger.
	logger *zap.Logger
}

// NewZapSink creates and returns a new instance of ZapSink.
// If l is nil, the package-level logger is used.
func NewZapSink(l *zap.Logger) *ZapSink {
	if l == nil {
		l = logger.Logger()
	}

	return &ZapSink{logger: l}
}

// Info emits a success-severity record at zap's info level.
func (s *ZapSink) Info(payload *Payload, message string) {
	s.logger.Info(message, payloadFields(payload)...)
}

// Error emits a failure-severity record at zap's error level.
func (s *ZapSink) Error(payload *Payload, message string) {
	s.logger.Error(message, payloadFields(payload)...)
}

// payloadFields converts a payload into zap fields, skipping the parts a
// given lifecycle branch did not produce.
func payloadFields(payload *Payload) []zap.Field {
	if payload == nil {
		return nil
	}

	fields := make([]zap.Field, 0, 5)

	if payload.Request != nil {
		fields = append(fields, zap.Any("request", payload.Request))
	}

	if payload.Response != nil {
		fields = append(fields, zap.Any("response", payload.Response))
	}

	if payload.Err != nil {
		fields = append(fields, zap.Error(payload.Err))
	}

	if payload.RequestDump != "" {
		fields = append(fields, zap.String("request_dump", payload.RequestDump))
	}

	if payload.ResponseDump != "" {
		fields = append(fields, zap.String("response_dump", payload.ResponseDump))
	}

	return fields
}
