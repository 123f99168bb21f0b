package entity

// DeliveryResult is the outcome of one delivery attempt: Delivered or Failed(reason).
type DeliveryResult struct {
	err error
}

func Delivered() DeliveryResult {
	return DeliveryResult{}
}

// Failed builds a failed result. A nil reason still counts as a failure.
func Failed(reason error) DeliveryResult {
	if reason == nil {
		reason = ErrUnknownFailure
	}
	return DeliveryResult{err: reason}
}

func (r DeliveryResult) OK() bool {
	return r.err == nil
}

// Err returns the failure reason, or nil when the message was delivered.
func (r DeliveryResult) Err() error {
	return r.err
}

func (r DeliveryResult) String() string {
	if r.OK() {
		return "delivered"
	}
	return "failed"
}
