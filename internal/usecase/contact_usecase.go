package usecase

import (
	"context"
	"time"
)

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// ContactReceipt acknowledges an accepted message.
type ContactReceipt struct {
	Name       string
	ReceivedAt time.Time
}

// ContactUsecase accepts contact form submissions.
type ContactUsecase interface {
	Submit(ctx context.Context, msg *ContactMessage) (*ContactReceipt, error)
}
