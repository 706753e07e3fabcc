package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/usecase"

	"go.uber.org/fx"
)

type contactService struct {
	logger *slog.Logger
	now    func() time.Time
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	Logger *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		logger: params.Logger,
		now:    time.Now,
	}
}

// Submit records the message in the log. Messages are not persisted.
func (srv *contactService) Submit(ctx context.Context, msg *usecase.ContactMessage) (*usecase.ContactReceipt, error) {
	receivedAt := srv.now().UTC()

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Contact form submission received",
		slog.String("name", msg.Name),
		slog.String("email", msg.Email),
		slog.String("message", msg.Message),
		slog.Time("receivedAt", receivedAt),
	)

	return &usecase.ContactReceipt{
		Name:       msg.Name,
		ReceivedAt: receivedAt,
	}, nil
}
