// Package payload builds the provider-agnostic notification payloads
// sent to the SMS gateway. Every builder is a pure function of its
// typed parameters: monetary fields go through sms.FormatAmount,
// optional values omit their keys entirely, and each intent carries a
// unique "type" discriminator. Builders that render a free-text body
// compose it from the same inputs that populate the structured fields,
// so the two can never disagree.
package payload

import (
	"github.com/example/sms-dispatch/internal/sms"
)

// Payload is one notification ready for dispatch. Constructed fresh
// per call and not mutated after it is built.
type Payload map[string]any

// Type discriminators, one per notification intent.
const (
	TypeTransaction             = "transaction"
	TypeDeposit                 = "deposit_confirmation"
	TypeWithdrawal              = "withdrawal_confirmation"
	TypeTransfer                = "transfer_confirmation"
	TypeBulkAuthorization       = "bulk_authorization"
	TypeBulkRejection           = "bulk_rejection_enhanced"
	TypeBulkReceived            = "bulk_received_enhanced"
	TypeBulkStatus              = "bulk_status_enhanced"
	TypeCSVUpload               = "csv_upload_confirmation"
	TypeNonSubscriberInvitation = "non_subscriber_invitation"
	TypeBatchProgress           = "batch_processing_update"
	TypeSelectiveAuthSummary    = "selective_authorization_summary"
	TypeJointInvitation         = "joint_invitation"
	TypeJointApproval           = "joint_approval"
	TypeJointRejection          = "joint_rejection"
	TypeJointWithdrawalRequest  = "joint_withdrawal_request"
	TypeJointDeposit            = "joint_deposit"
	TypeNotification            = "notification"
)

// Custom is a freeform notification with a caller-chosen type and
// optional extra fields merged into the payload.
type Custom struct {
	Phone   string
	Message string
	Type    string
	Extra   map[string]any
}

func (c Custom) Payload() Payload {
	kind := c.Type
	if kind == "" {
		kind = TypeNotification
	}
	p := Payload{
		"phone":   c.Phone,
		"message": c.Message,
		"type":    kind,
	}
	for k, v := range c.Extra {
		p[k] = v
	}
	return p
}

// Subscription confirms a product subscription. Kind defaults to
// "ordinary" and becomes part of the discriminator, e.g.
// "ordinary_subscription".
type Subscription struct {
	CustomerName string
	ProductName  string
	BankName     string
	Kind         string
}

func (s Subscription) Payload() Payload {
	kind := s.Kind
	if kind == "" {
		kind = "ordinary"
	}
	return Payload{
		"customer_name": s.CustomerName,
		"product_name":  s.ProductName,
		"bank_name":     s.BankName,
		"type":          kind + "_subscription",
	}
}

func amount(v float64) string { return sms.FormatAmount(v) }
