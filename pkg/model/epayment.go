package model

// Currency is an ISO 4217 currency code.
type Currency string

// Currencies accepted by the ePayment API.
const (
	CurrencyNOK Currency = "NOK"
	CurrencyDKK Currency = "DKK"
	CurrencyEUR Currency = "EUR"
)

// Reference is the merchant's unique payment reference.
type Reference = string

// PspReference is the payment service provider's reference.
type PspReference = string

// Amount is a value in minor units with its currency.
type Amount struct {
	Currency Currency `json:"currency"`
	Value    int64    `json:"value"`
}

// State is the ePayment payment state.
type State string

// Payment states.
const (
	StateCreated    State = "CREATED"
	StateAborted    State = "ABORTED"
	StateExpired    State = "EXPIRED"
	StateAuthorized State = "AUTHORIZED"
	StateTerminated State = "TERMINATED"
)

// PaymentMethodType is the method used to pay.
type PaymentMethodType string

// Payment method types.
const (
	PaymentMethodWallet PaymentMethodType = "WALLET"
	PaymentMethodCard   PaymentMethodType = "CARD"
)

// UserFlow selects how the customer is taken to the payment.
type UserFlow string

// User flows.
const (
	UserFlowPushMessage    UserFlow = "PUSH_MESSAGE"
	UserFlowNativeRedirect UserFlow = "NATIVE_REDIRECT"
	UserFlowWebRedirect    UserFlow = "WEB_REDIRECT"
	UserFlowQR             UserFlow = "QR"
)

// CustomerInteraction tells whether the customer is present at the point of sale.
type CustomerInteraction string

// Customer interactions.
const (
	CustomerPresent    CustomerInteraction = "CUSTOMER_PRESENT"
	CustomerNotPresent CustomerInteraction = "CUSTOMER_NOT_PRESENT"
)

// QRFormatType is the representation of a QR code returned for UserFlowQR.
type QRFormatType string

// QR formats.
const (
	QRFormatTargetURL QRFormatType = "TEXT/TARGETURL"
	QRFormatSVG       QRFormatType = "IMAGE/SVG+XML"
	QRFormatPNG       QRFormatType = "IMAGE/PNG"
)

// EventName is the name of an entry in the payment event log.
type EventName string

// Event names.
const (
	EventCreated    EventName = "CREATED"
	EventAborted    EventName = "ABORTED"
	EventExpired    EventName = "EXPIRED"
	EventCancelled  EventName = "CANCELLED"
	EventCaptured   EventName = "CAPTURED"
	EventRefunded   EventName = "REFUNDED"
	EventAuthorized EventName = "AUTHORIZED"
	EventTerminated EventName = "TERMINATED"
)

// PaymentAction is the operation that produced a payment event.
type PaymentAction string

// Payment actions.
const (
	ActionCreate    PaymentAction = "CREATE"
	ActionAbort     PaymentAction = "ABORT"
	ActionExpire    PaymentAction = "EXPIRE"
	ActionCancel    PaymentAction = "CANCEL"
	ActionCapture   PaymentAction = "CAPTURE"
	ActionRefund    PaymentAction = "REFUND"
	ActionAuthorise PaymentAction = "AUTHORISE"
	ActionTerminate PaymentAction = "TERMINATE"
)

// Address is a customer's postal address.
type Address struct {
	City     string   `json:"city"`
	Country  string   `json:"country"`
	ID       string   `json:"id,omitempty"`
	Lines    []string `json:"lines"`
	PostCode string   `json:"postCode"`
}

// Aggregate sums the amounts processed on a payment.
type Aggregate struct {
	AuthorizedAmount Amount `json:"authorizedAmount"`
	CancelledAmount  Amount `json:"cancelledAmount"`
	CapturedAmount   Amount `json:"capturedAmount"`
	RefundedAmount   Amount `json:"refundedAmount"`
}

// AirlineData is industry data for airline payments.
type AirlineData struct {
	AgencyInvoiceNumber   string `json:"agencyInvoiceNumber"`
	AirlineCode           string `json:"airlineCode"`
	AirlineDesignatorCode string `json:"airlineDesignatorCode"`
	PassengerName         string `json:"passengerName"`
	TicketNumber          string `json:"ticketNumber,omitempty"`
}

// IndustryData carries optional industry-specific payment data.
type IndustryData struct {
	AirlineData *AirlineData `json:"airlineData,omitempty"`
}

// Customer identifies the paying customer.
type Customer struct {
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// PaymentMethod selects the payment method for a new payment.
type PaymentMethod struct {
	Type PaymentMethodType `json:"type"`
}

// PaymentMethodResponse is the payment method reported for a payment.
type PaymentMethodResponse struct {
	Type    PaymentMethodType `json:"type"`
	CardBin string            `json:"cardBin,omitempty"`
}

// ProfileRequest asks for customer profile data with an OpenID scope.
type ProfileRequest struct {
	Scope string `json:"scope,omitempty"`
}

// ProfileResponse references the shared customer profile.
type ProfileResponse struct {
	Sub string `json:"sub,omitempty"`
}

// QRFormat configures the QR code for UserFlowQR.
type QRFormat struct {
	Format QRFormatType `json:"format"`
	Size   *int         `json:"size,omitempty"`
}

// CreatePaymentRequest is the body of POST /epayment/v1/payments.
type CreatePaymentRequest struct {
	Amount              Amount              `json:"amount"`
	Customer            *Customer           `json:"customer,omitempty"`
	CustomerInteraction CustomerInteraction `json:"customerInteraction,omitempty"`
	IndustryData        *IndustryData       `json:"industryData,omitempty"`
	PaymentMethod       PaymentMethod       `json:"paymentMethod"`
	Profile             *ProfileRequest     `json:"profile,omitempty"`
	Reference           Reference           `json:"reference"`
	ReturnURL           string              `json:"returnUrl,omitempty"`
	UserFlow            UserFlow            `json:"userFlow"`
	ExpiresAt           *string             `json:"expiresAt,omitempty"`
	QRFormat            *QRFormat           `json:"qrFormat,omitempty"`
	PaymentDescription  string              `json:"paymentDescription,omitempty"`
}

// CreatePaymentResponse is returned when a payment is created.
type CreatePaymentResponse struct {
	RedirectURL string    `json:"redirectUrl,omitempty"`
	Reference   Reference `json:"reference"`
}

// GetPaymentResponse is the current state of a payment.
type GetPaymentResponse struct {
	Aggregate     Aggregate             `json:"aggregate"`
	Amount        Amount                `json:"amount"`
	State         State                 `json:"state"`
	PaymentMethod PaymentMethodResponse `json:"paymentMethod"`
	Profile       ProfileResponse       `json:"profile"`
	PspReference  PspReference          `json:"pspReference"`
	RedirectURL   string                `json:"redirectUrl,omitempty"`
	Reference     Reference             `json:"reference"`
}

// ModificationResponse is returned by cancel, capture and refund.
type ModificationResponse struct {
	Amount       Amount       `json:"amount"`
	State        State        `json:"state"`
	Aggregate    Aggregate    `json:"aggregate"`
	PspReference PspReference `json:"pspReference"`
	Reference    Reference    `json:"reference"`
}

// CaptureModificationRequest is the body of a capture.
type CaptureModificationRequest struct {
	ModificationAmount Amount `json:"modificationAmount"`
}

// RefundModificationRequest is the body of a refund.
type RefundModificationRequest struct {
	ModificationAmount Amount `json:"modificationAmount"`
}

// PaymentAdjustment describes a modification by its own reference.
type PaymentAdjustment struct {
	ModificationAmount    Amount    `json:"modificationAmount"`
	ModificationReference Reference `json:"modificationReference"`
}

// PaymentEvent is one entry of the payment event log.
type PaymentEvent struct {
	Reference      Reference     `json:"reference"`
	PspReference   PspReference  `json:"pspReference"`
	Name           EventName     `json:"name,omitempty"`
	PaymentAction  PaymentAction `json:"paymentAction"`
	Amount         Amount        `json:"amount"`
	Timestamp      string        `json:"timestamp"`
	ProcessedAt    string        `json:"processedAt,omitempty"`
	IdempotencyKey *string       `json:"idempotencyKey,omitempty"`
	Success        bool          `json:"success"`
}

// ForceApprove is the optional body of the test-only force approve call.
type ForceApprove struct {
	Customer *Customer `json:"customer,omitempty"`
	Token    string    `json:"token,omitempty"`
}

// Problem is the RFC 7807 error document returned by the ePayment API.
type Problem struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Detail  string `json:"detail,omitempty"`
	TraceID string `json:"traceId"`
}
