// Package model defines the JSON payloads exchanged with the Vipps MobilePay
// Checkout v3 and ePayment v1 APIs. The SDK does not inspect these values;
// they are encoded into request bodies and decoded from responses as is.
//
// Checkout types carry a Checkout prefix. ePayment types are unprefixed:
//
//	req := &model.CreatePaymentRequest{
//		Amount:        model.Amount{Currency: model.CurrencyNOK, Value: 1000},
//		PaymentMethod: model.PaymentMethod{Type: model.PaymentMethodWallet},
//		Reference:     "order-123",
//		UserFlow:      model.UserFlowWebRedirect,
//		ReturnURL:     "https://example.com/return",
//	}
//
// # Amounts
//
// Amount values are in minor units (øre): 1000 is 10.00 NOK. ToMinorUnits
// and FromMinorUnits convert between the two using exact decimal arithmetic:
//
//	value, err := model.ToMinorUnits("249.90") // 24990
//	nok := model.FromMinorUnits(24990)         // decimal 249.9
package model
