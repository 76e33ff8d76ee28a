package model

// CheckoutAmount is a Checkout value in minor units.
type CheckoutAmount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// CheckoutCustomerInteraction tells whether the customer is present.
type CheckoutCustomerInteraction string

// Checkout customer interactions.
const (
	CheckoutCustomerPresent    CheckoutCustomerInteraction = "CUSTOMER_PRESENT"
	CheckoutCustomerNotPresent CheckoutCustomerInteraction = "CUSTOMER_NOT_PRESENT"
)

// CheckoutElements selects the fields shown in the Checkout.
type CheckoutElements string

// Checkout element sets.
const (
	CheckoutElementsFull                  CheckoutElements = "Full"
	CheckoutElementsPaymentAndContactInfo CheckoutElements = "PaymentAndContactInfo"
	CheckoutElementsPaymentOnly           CheckoutElements = "PaymentOnly"
)

// CheckoutUserFlow is the user flow of a Checkout session.
type CheckoutUserFlow string

// Checkout user flows.
const (
	CheckoutUserFlowWebRedirect    CheckoutUserFlow = "WEB_REDIRECT"
	CheckoutUserFlowNativeRedirect CheckoutUserFlow = "NATIVE_REDIRECT"
)

// CheckoutSessionState is the externally visible session state.
type CheckoutSessionState string

// Checkout session states.
const (
	CheckoutSessionCreated           CheckoutSessionState = "SessionCreated"
	CheckoutSessionPaymentInitiated  CheckoutSessionState = "PaymentInitiated"
	CheckoutSessionExpired           CheckoutSessionState = "SessionExpired"
	CheckoutSessionPaymentSuccessful CheckoutSessionState = "PaymentSuccessful"
	CheckoutSessionPaymentTerminated CheckoutSessionState = "PaymentTerminated"
)

// CheckoutPaymentMethod is the method the customer paid with.
type CheckoutPaymentMethod string

// Checkout payment methods.
const (
	CheckoutPaymentMethodWallet    CheckoutPaymentMethod = "Wallet"
	CheckoutPaymentMethodCard      CheckoutPaymentMethod = "Card"
	CheckoutPaymentMethodSwish     CheckoutPaymentMethod = "Swish"
	CheckoutPaymentMethodMobilepay CheckoutPaymentMethod = "Mobilepay"
)

// CheckoutPaymentState is the payment state inside a session.
type CheckoutPaymentState string

// Checkout payment states.
const (
	CheckoutPaymentCreated    CheckoutPaymentState = "CREATED"
	CheckoutPaymentAuthorized CheckoutPaymentState = "AUTHORIZED"
	CheckoutPaymentTerminated CheckoutPaymentState = "TERMINATED"
)

// CheckoutQuantityUnit is the unit of an order line quantity.
type CheckoutQuantityUnit string

// Quantity units.
const (
	CheckoutQuantityPieces CheckoutQuantityUnit = "PCS"
	CheckoutQuantityKilo   CheckoutQuantityUnit = "KG"
	CheckoutQuantityKm     CheckoutQuantityUnit = "KM"
	CheckoutQuantityMinute CheckoutQuantityUnit = "MINUTE"
	CheckoutQuantityLitre  CheckoutQuantityUnit = "LITRE"
)

// CheckoutLogisticsBrand identifies the carrier of a logistics option.
type CheckoutLogisticsBrand string

// Logistics brands.
const (
	CheckoutBrandPosten      CheckoutLogisticsBrand = "POSTEN"
	CheckoutBrandPostnord    CheckoutLogisticsBrand = "POSTNORD"
	CheckoutBrandPorterbuddy CheckoutLogisticsBrand = "PORTERBUDDY"
	CheckoutBrandInstabox    CheckoutLogisticsBrand = "INSTABOX"
	CheckoutBrandHelthjem    CheckoutLogisticsBrand = "HELTHJEM"
	CheckoutBrandOther       CheckoutLogisticsBrand = "OTHER"
)

// CheckoutLogisticsType is the delivery type of a logistics option.
type CheckoutLogisticsType string

// Logistics types. Not every brand supports every type.
const (
	CheckoutLogisticsMailbox      CheckoutLogisticsType = "MAILBOX"
	CheckoutLogisticsPickupPoint  CheckoutLogisticsType = "PICKUP_POINT"
	CheckoutLogisticsHomeDelivery CheckoutLogisticsType = "HOME_DELIVERY"
)

// CheckoutInitiateSessionRequest sets up a Checkout session.
type CheckoutInitiateSessionRequest struct {
	MerchantInfo    CheckoutPaymentMerchantInfo `json:"merchantInfo"`
	Transaction     CheckoutPaymentTransaction  `json:"transaction"`
	Logistics       *CheckoutLogistics          `json:"logistics,omitempty"`
	PrefillCustomer *CheckoutPrefillCustomer    `json:"prefillCustomer,omitempty"`
	Configuration   *CheckoutConfig             `json:"configuration,omitempty"`
}

// CheckoutInitiateSessionResponse is returned when a session is created.
type CheckoutInitiateSessionResponse struct {
	Token               string `json:"token"`
	CheckoutFrontendURL string `json:"checkoutFrontendUrl"`
	PollingURL          string `json:"pollingUrl"`
}

// CheckoutPaymentMerchantInfo holds the merchant's callback configuration.
type CheckoutPaymentMerchantInfo struct {
	CallbackURL                string `json:"callbackUrl"`
	ReturnURL                  string `json:"returnUrl"`
	CallbackAuthorizationToken string `json:"callbackAuthorizationToken"`
	TermsAndConditionsURL      string `json:"termsAndConditionsUrl,omitempty"`
}

// CheckoutPaymentTransaction describes what is being paid for.
type CheckoutPaymentTransaction struct {
	Amount             CheckoutAmount        `json:"amount"`
	Reference          string                `json:"reference"`
	PaymentDescription string                `json:"paymentDescription"`
	OrderSummary       *CheckoutOrderSummary `json:"orderSummary,omitempty"`
}

// CheckoutOrderSummary lists the order lines of a transaction.
type CheckoutOrderSummary struct {
	OrderLines      []CheckoutOrderLine     `json:"orderLines"`
	OrderBottomLine CheckoutOrderBottomLine `json:"orderBottomLine"`
}

// CheckoutOrderLine is one item of an order. Amounts are in minor units.
type CheckoutOrderLine struct {
	Name                    string                 `json:"name"`
	ID                      string                 `json:"id"`
	TotalAmount             int64                  `json:"totalAmount"`
	TotalAmountExcludingTax int64                  `json:"totalAmountExcludingTax"`
	TotalTaxAmount          int64                  `json:"totalTaxAmount"`
	TaxPercentage           int                    `json:"taxPercentage"`
	UnitInfo                *CheckoutOrderUnitInfo `json:"unitInfo,omitempty"`
	Discount                *int64                 `json:"discount,omitempty"`
	ProductURL              string                 `json:"productUrl,omitempty"`
	IsReturn                *bool                  `json:"isReturn,omitempty"`
	IsShipping              *bool                  `json:"isShipping,omitempty"`
}

// CheckoutOrderUnitInfo is the unit price and quantity of an order line.
type CheckoutOrderUnitInfo struct {
	UnitPrice    int64                `json:"unitPrice"`
	Quantity     string               `json:"quantity"`
	QuantityUnit CheckoutQuantityUnit `json:"quantityUnit"`
}

// CheckoutOrderBottomLine carries order-level amounts.
type CheckoutOrderBottomLine struct {
	Currency       string `json:"currency"`
	TipAmount      *int64 `json:"tipAmount,omitempty"`
	GiftCardAmount *int64 `json:"giftCardAmount,omitempty"`
	TerminalID     string `json:"terminalId,omitempty"`
}

// CheckoutLogistics configures shipping for a session.
type CheckoutLogistics struct {
	DynamicOptionsCallback string                    `json:"dynamicOptionsCallback,omitempty"`
	FixedOptions           []CheckoutLogisticsOption `json:"fixedOptions,omitempty"`
	Integrations           *CheckoutIntegrations     `json:"integrations,omitempty"`
}

// CheckoutLogisticsOption is a shipping option. Brand selects the carrier;
// Title is used only with CheckoutBrandOther.
type CheckoutLogisticsOption struct {
	Amount      CheckoutAmount         `json:"amount"`
	ID          string                 `json:"id"`
	Priority    int                    `json:"priority"`
	IsDefault   bool                   `json:"isDefault"`
	Description string                 `json:"description,omitempty"`
	Brand       CheckoutLogisticsBrand `json:"brand"`
	Type        CheckoutLogisticsType  `json:"type,omitempty"`
	CustomType  string                 `json:"customType,omitempty"`
	Title       string                 `json:"title,omitempty"`
}

// CheckoutIntegrations holds carrier credentials for dynamic logistics.
type CheckoutIntegrations struct {
	Porterbuddy *CheckoutPorterbuddy `json:"porterbuddy,omitempty"`
	Instabox    *CheckoutInstabox    `json:"instabox,omitempty"`
	Helthjem    *CheckoutHelthjem    `json:"helthjem,omitempty"`
}

type CheckoutPorterbuddy struct {
	PublicToken string                    `json:"publicToken"`
	APIKey      string                    `json:"apiKey"`
	Origin      CheckoutPorterbuddyOrigin `json:"origin"`
}

type CheckoutPorterbuddyOrigin struct {
	Name        string                           `json:"name"`
	Email       string                           `json:"email"`
	PhoneNumber string                           `json:"phoneNumber"`
	Address     CheckoutPorterbuddyOriginAddress `json:"address"`
}

type CheckoutPorterbuddyOriginAddress struct {
	StreetAddress string `json:"streetAddress"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
	Country       string `json:"country"`
}

type CheckoutInstabox struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

type CheckoutHelthjem struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ShopID   int    `json:"shopId"`
}

// CheckoutPrefillCustomer is customer data shown prefilled in the Checkout.
type CheckoutPrefillCustomer struct {
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Email         string `json:"email,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	StreetAddress string `json:"streetAddress,omitempty"`
	City          string `json:"city,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Country       string `json:"country,omitempty"`
}

// CheckoutConfig adjusts how the Checkout behaves.
type CheckoutConfig struct {
	CustomerInteraction CheckoutCustomerInteraction `json:"customerInteraction,omitempty"`
	Elements            CheckoutElements            `json:"elements,omitempty"`
	Countries           *CheckoutCountries          `json:"countries,omitempty"`
	UserFlow            CheckoutUserFlow            `json:"userFlow,omitempty"`
	RequireUserInfo     *bool                       `json:"requireUserInfo,omitempty"`
	CustomConsent       *CheckoutCustomConsent      `json:"customConsent,omitempty"`
	ShowOrderSummary    *bool                       `json:"showOrderSummary,omitempty"`
}

type CheckoutCountries struct {
	Supported []string `json:"supported"`
}

type CheckoutCustomConsent struct {
	Text     string `json:"text"`
	Required bool   `json:"required"`
}

// CheckoutSessionResponse is the state of a Checkout session.
type CheckoutSessionResponse struct {
	SessionID             string                          `json:"sessionId"`
	MerchantSerialNumber  string                          `json:"merchantSerialNumber,omitempty"`
	Reference             string                          `json:"reference"`
	SessionState          CheckoutSessionState            `json:"sessionState"`
	PaymentMethod         CheckoutPaymentMethod           `json:"paymentMethod,omitempty"`
	PaymentDetails        *CheckoutResponsePaymentDetails `json:"paymentDetails,omitempty"`
	UserInfo              *CheckoutUserInfo               `json:"userInfo,omitempty"`
	ShippingDetails       *CheckoutShippingDetails        `json:"shippingDetails,omitempty"`
	BillingDetails        *CheckoutBillingDetails         `json:"billingDetails,omitempty"`
	CustomConsentProvided *bool                           `json:"customConsentProvided,omitempty"`
}

type CheckoutResponsePaymentDetails struct {
	Amount    CheckoutAmount                `json:"amount"`
	State     CheckoutPaymentState          `json:"state"`
	Aggregate *CheckoutTransactionAggregate `json:"aggregate,omitempty"`
}

type CheckoutTransactionAggregate struct {
	CancelledAmount  *CheckoutAmount `json:"cancelledAmount,omitempty"`
	CapturedAmount   *CheckoutAmount `json:"capturedAmount,omitempty"`
	RefundedAmount   *CheckoutAmount `json:"refundedAmount,omitempty"`
	AuthorizedAmount *CheckoutAmount `json:"authorizedAmount,omitempty"`
}

// CheckoutUserInfo is present only when the UserInfo flow is used.
type CheckoutUserInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email,omitempty"`
}

type CheckoutShippingDetails struct {
	FirstName        string               `json:"firstName,omitempty"`
	LastName         string               `json:"lastName,omitempty"`
	Email            string               `json:"email,omitempty"`
	PhoneNumber      string               `json:"phoneNumber,omitempty"`
	StreetAddress    string               `json:"streetAddress,omitempty"`
	PostalCode       string               `json:"postalCode,omitempty"`
	City             string               `json:"city,omitempty"`
	Country          string               `json:"country,omitempty"`
	ShippingMethodID string               `json:"shippingMethodId,omitempty"`
	PickupPoint      *CheckoutPickupPoint `json:"pickupPoint,omitempty"`
}

type CheckoutPickupPoint struct {
	ID           string                          `json:"id"`
	Name         string                          `json:"name"`
	Address      string                          `json:"address"`
	PostalCode   string                          `json:"postalCode"`
	City         string                          `json:"city"`
	Country      string                          `json:"country"`
	OpeningHours []string                        `json:"openingHours,omitempty"`
	Instabox     *CheckoutInstaboxBookingDetails `json:"instabox,omitempty"`
}

type CheckoutInstaboxBookingDetails struct {
	AvailabilityToken string `json:"availabilityToken"`
	ServiceType       string `json:"serviceType"`
	SortCode          string `json:"sortCode"`
}

type CheckoutBillingDetails struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	StreetAddress string `json:"streetAddress,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
}
