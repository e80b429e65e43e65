package model

import "time"

// Profile holds the partner's personal details. ID equals the provider
// account id.
type Profile struct {
	ID        string     `json:"id" db:"id"`
	FirstName string     `json:"first_name" db:"first_name"`
	LastName  string     `json:"last_name" db:"last_name"`
	Email     string     `json:"email" db:"email"`
	Phone     string     `json:"phone" db:"phone"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// ProfileInput is the write payload for the personal section.
type ProfileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// BusinessDetails holds the kitchen's business information.
type BusinessDetails struct {
	UserID       string     `json:"user_id" db:"user_id"`
	BusinessName string     `json:"business_name" db:"business_name"`
	Address      string     `json:"address" db:"address"`
	City         string     `json:"city" db:"city"`
	Pincode      string     `json:"pincode" db:"pincode"`
	Description  string     `json:"description" db:"description"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// BusinessDetailsInput is the write payload for the business section.
type BusinessDetailsInput struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`
	Description  string `json:"description"`
}

// PaymentDetails holds the partner's payout account.
type PaymentDetails struct {
	UserID        string     `json:"user_id" db:"user_id"`
	AccountHolder string     `json:"account_holder" db:"account_holder"`
	AccountNumber string     `json:"account_number" db:"account_number"`
	IFSC          string     `json:"ifsc" db:"ifsc"`
	BankName      string     `json:"bank_name" db:"bank_name"`
	UPIID         string     `json:"upi_id" db:"upi_id"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// PaymentDetailsInput is the write payload for the payment section.
type PaymentDetailsInput struct {
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
	BankName      string `json:"bank_name"`
	UPIID         string `json:"upi_id"`
}

// NotificationPreferences holds the five notification toggles.
type NotificationPreferences struct {
	UserID               string     `json:"user_id" db:"user_id"`
	NewOrders            bool       `json:"new_orders" db:"new_orders"`
	PaymentReceived      bool       `json:"payment_received" db:"payment_received"`
	SubscriptionRenewals bool       `json:"subscription_renewals" db:"subscription_renewals"`
	Reviews              bool       `json:"reviews" db:"reviews"`
	Marketing            bool       `json:"marketing" db:"marketing"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// NotificationPreferencesInput is the write payload for the notifications
// section.
type NotificationPreferencesInput struct {
	NewOrders            bool `json:"new_orders"`
	PaymentReceived      bool `json:"payment_received"`
	SubscriptionRenewals bool `json:"subscription_renewals"`
	Reviews              bool `json:"reviews"`
	Marketing            bool `json:"marketing"`
}
