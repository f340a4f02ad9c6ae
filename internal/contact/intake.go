package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Intake accepts contact form submissions. Accepted inquiries are logged and,
// when a store is configured, saved locally. Nothing is forwarded anywhere.
type Intake struct {
	store  *Store
	logger *zap.Logger
	now    func() time.Time
}

// NewIntake returns an intake. store may be nil to disable persistence.
func NewIntake(store *Store, logger *zap.Logger) *Intake {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Intake{store: store, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// Submit validates the form and records it. A non-nil FieldErrors means the
// form was rejected and nothing was recorded.
func (in *Intake) Submit(ctx context.Context, f Form, remoteAddr string) (*Inquiry, FieldErrors, error) {
	if errs := f.Validate(); errs != nil {
		in.logger.Debug("contact form rejected", zap.Int("fields", len(errs)))
		return nil, errs, nil
	}

	inq := Inquiry{ID: uuid.New().String(), Form: f, RemoteAddr: remoteAddr, CreatedAt: in.now()}
	if in.store != nil {
		saved, err := in.store.Save(ctx, inq)
		if err != nil {
			return nil, nil, err
		}
		inq = *saved
	}

	in.logger.Info("estimate request received",
		zap.String("id", inq.ID),
		zap.String("service", f.Service),
		zap.Bool("stored", in.store != nil),
	)
	return &inq, nil, nil
}
