package alerting_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/alerting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *alerting.Service {
	return alerting.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRecent_EmptyInitially(t *testing.T) {
	service := newService()

	assert.Empty(t, service.Recent(context.Background()))
}

func TestError_RetainsNewestFirst(t *testing.T) {
	service := newService()

	service.Error("Error: first")
	service.Error("Error: second")

	alerts := service.Recent(context.Background())
	require.Len(t, alerts, 2)
	assert.Equal(t, "Error: second", alerts[0].Message)
	assert.Equal(t, "Error: first", alerts[1].Message)
	assert.NotEmpty(t, alerts[0].At)
}

func TestError_BuffersAreBounded(t *testing.T) {
	service := newService()

	for i := 0; i < 30; i++ {
		service.Error(fmt.Sprintf("Error: %d", i))
	}

	alerts := service.Recent(context.Background())
	require.Len(t, alerts, 20)
	assert.Equal(t, "Error: 29", alerts[0].Message)
}
