package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	previous := L
	L = &logger{entry: logrus.NewEntry(base)}
	t.Cleanup(func() { L = previous })
	return buf
}

func TestForContext_CarriesCorrelationID(t *testing.T) {
	buf := captureLogger(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("teste")

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Contains(t, buf.String(), "correlation_id="+id)
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureLogger(t)

	L.WithFields(Fields{"company_id": "12", "bytes": 10}).Info("filtrado")

	assert.Contains(t, buf.String(), "company_id=12")
	assert.NotContains(t, buf.String(), "bytes=")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureLogger(t)

	L.WithFields(Fields{"company_id": "12", "bytes": 10}).Info("completo")

	assert.Contains(t, buf.String(), "bytes=10")
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}
