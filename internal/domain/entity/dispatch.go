package entity

// DispatchState tracks a dispatch request through its lifecycle.
type DispatchState string

const (
	DispatchReceived           DispatchState = "RECEIVED"
	DispatchValidated          DispatchState = "VALIDATED"
	DispatchFetchingRecipients DispatchState = "FETCHING_RECIPIENTS"
	DispatchSending            DispatchState = "SENDING"
	DispatchCompleted          DispatchState = "COMPLETED"
	DispatchFailed             DispatchState = "FAILED"
)

// DeliveryOutcome is the result of one send. Exactly one of SID or Error is set.
type DeliveryOutcome struct {
	PhoneNumber string `json:"phoneNumber"`
	SID         string `json:"sid,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Accepted reports whether the provider accepted the message.
func (o DeliveryOutcome) Accepted() bool {
	return o.Error == ""
}

// DispatchResult collects the outcome of every destination in request order.
type DispatchResult struct {
	ParkingLot string            `json:"parkingLot,omitempty"`
	State      DispatchState     `json:"state"`
	Results    []DeliveryOutcome `json:"results"`
	TotalSent  int               `json:"total_sent"`
	TotalError int               `json:"total_failed"`
}
