package mail

import (
	"context"
	"sync"

	"github.com/voxelia/landing/internal/entity"
)

// Outbox is an in-memory Transport used for dry runs and tests.
type Outbox struct {
	mu   sync.Mutex
	sent []Email
	fail error
}

func NewOutbox() *Outbox {
	return &Outbox{}
}

// FailWith makes every following Send fail with err. A nil err restores success.
func (o *Outbox) FailWith(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fail = err
}

func (o *Outbox) Send(_ context.Context, e *Email) entity.DeliveryResult {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.fail != nil {
		return entity.Failed(o.fail)
	}
	o.sent = append(o.sent, *e)
	return entity.Delivered()
}

func (o *Outbox) Sent() []Email {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Email, len(o.sent))
	copy(out, o.sent)
	return out
}
