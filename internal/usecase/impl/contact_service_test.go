package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_Submit(t *testing.T) {
	var buf bytes.Buffer
	requestLogger := slog.New(slog.NewJSONHandler(&buf, nil))
	received := time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC)

	service := NewContactService(ContactServiceParams{Logger: newDiscardLogger()})
	service.(*contactService).now = func() time.Time { return received }

	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)
	receipt, err := service.Submit(ctx, &usecase.ContactMessage{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "Hello there",
	})
	require.NoError(t, err)

	assert.Equal(t, "Grace", receipt.Name)
	assert.Equal(t, received, receipt.ReceivedAt)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Contact form submission received", entry["msg"])
	assert.Equal(t, "grace@example.com", entry["email"])
	assert.Equal(t, "Hello there", entry["message"])
}
