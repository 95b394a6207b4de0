package payload

import (
	"strings"
	"testing"
)

func TestTransactionPayload(t *testing.T) {
	p := Transaction{ProductName: "Gold Saver", Balance: 1234.5, BankName: "Awash Bank"}.Payload()

	if p["type"] != TypeTransaction {
		t.Fatalf("type = %v", p["type"])
	}
	if p["saving_balance"] != "1,234.50" {
		t.Fatalf("saving_balance = %v", p["saving_balance"])
	}
	if p["product_name"] != "Gold Saver" || p["bank_name"] != "Awash Bank" {
		t.Fatalf("unexpected payload %v", p)
	}
}

func TestDepositOptionalCustomerName(t *testing.T) {
	base := Deposit{Phone: "0911223344", Amount: 100, Balance: 500, ProductName: "P", BankName: "B"}

	if _, ok := base.Payload()["customer_name"]; ok {
		t.Fatal("absent customer name must omit the key")
	}

	base.CustomerName = "Abebe"
	if got := base.Payload()["customer_name"]; got != "Abebe" {
		t.Fatalf("customer_name = %v", got)
	}
}

func TestWithdrawalFeeOmittedWhenZero(t *testing.T) {
	w := Withdrawal{Phone: "0911223344", Amount: 50, Balance: 450, ProductName: "P", BankName: "B"}

	if _, ok := w.Payload()["fee_amount"]; ok {
		t.Fatal("zero fee must omit fee_amount")
	}

	w.FeeAmount = 2.5
	if got := w.Payload()["fee_amount"]; got != "2.50" {
		t.Fatalf("fee_amount = %v", got)
	}
	if w.Payload()["type"] != TypeWithdrawal {
		t.Fatalf("type = %v", w.Payload()["type"])
	}
}

func TestTransferPayload(t *testing.T) {
	p := Transfer{
		Amount:        1000,
		DebitProduct:  "Main",
		CreditProduct: "Holiday",
		DebitBalance:  9000,
		CreditBalance: 1000,
		BankName:      "B",
	}.Payload()

	if p["type"] != TypeTransfer || p["transaction_type"] != "TRANSFER" {
		t.Fatalf("unexpected discriminators in %v", p)
	}
	if _, ok := p["recipient_name"]; ok {
		t.Fatal("absent recipient must omit the key")
	}
}

func TestBulkAuthorizationMessageAgreesWithFields(t *testing.T) {
	p := BulkAuthorization{
		Phone:            "0911223344",
		AuthorizerName:   "Sara",
		BatchReference:   "BATCH-42",
		TransactionCount: 17,
		TotalAmount:      150000,
	}.Payload()

	msg, _ := p["message"].(string)
	for _, want := range []string{"Sara", "BATCH-42", "17", "150,000.00"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
	if p["total_amount"] != "150,000.00" {
		t.Fatalf("total_amount = %v", p["total_amount"])
	}
}

func TestBulkRejectionOptionalNextSteps(t *testing.T) {
	base := BulkRejection{
		Phone:           "0911223344",
		RecipientName:   "Kebede",
		Amount:          2500,
		SenderName:      "Acme PLC",
		RejectionReason: "Account dormant",
		BatchReference:  "BATCH-9",
	}

	p := base.Payload()
	if p["type"] != TypeBulkRejection {
		t.Fatalf("type = %v", p["type"])
	}
	if _, ok := p["next_steps"]; ok {
		t.Fatal("absent next steps must omit the key")
	}
	msg, _ := p["message"].(string)
	if !strings.Contains(msg, "Account dormant") || !strings.Contains(msg, "2,500.00") {
		t.Fatalf("message %q does not reflect structured fields", msg)
	}

	base.NextSteps = "Contact support"
	p = base.Payload()
	if p["next_steps"] != "Contact support" {
		t.Fatalf("next_steps = %v", p["next_steps"])
	}
	if msg, _ := p["message"].(string); !strings.Contains(msg, "Contact support") {
		t.Fatalf("message %q missing next steps", msg)
	}
}

func TestBulkStatusVariants(t *testing.T) {
	minutes := 3.5
	tests := []struct {
		name    string
		status  string
		reason  string
		wantIn  []string
		wantOut []string
	}{
		{
			name:   "completed",
			status: "COMPLETED",
			wantIn: []string{"complete", "All recipients notified"},
		},
		{
			name:   "rejected with reason",
			status: "rejected",
			reason: "Limit exceeded",
			wantIn: []string{"rejected", "Limit exceeded", "funds remain safe"},
		},
		{
			name:   "other status",
			status: "PROCESSING",
			wantIn: []string{"PROCESSING"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := BulkStatus{
				Phone:             "0911223344",
				SenderName:        "Acme",
				BatchID:           "7",
				TransactionCount:  4,
				TotalAmount:       900,
				Status:            tc.status,
				ProcessingMinutes: &minutes,
				RejectionReason:   tc.reason,
			}
			p := b.Payload()
			msg, _ := p["message"].(string)
			for _, want := range tc.wantIn {
				if !strings.Contains(msg, want) {
					t.Fatalf("message %q missing %q", msg, want)
				}
			}
			if !strings.Contains(msg, "3.5 minutes") {
				t.Fatalf("message %q missing processing time", msg)
			}
			if p["processing_time_minutes"] != minutes {
				t.Fatalf("processing_time_minutes = %v", p["processing_time_minutes"])
			}
		})
	}
}

func TestBulkStatusOmitsOptionals(t *testing.T) {
	p := BulkStatus{Phone: "0911223344", SenderName: "A", BatchID: "1", Status: "COMPLETED"}.Payload()
	if _, ok := p["processing_time_minutes"]; ok {
		t.Fatal("nil processing time must omit the key")
	}
	if _, ok := p["rejection_reason"]; ok {
		t.Fatal("empty reason must omit the key")
	}
}

func TestSelectiveAuthSummaryConditionals(t *testing.T) {
	s := SelectiveAuthSummary{
		Phone:            "0911223344",
		SenderName:       "Acme",
		BatchID:          "12",
		AuthorizedCount:  8,
		AuthorizedAmount: 4000,
	}

	p := s.Payload()
	msg, _ := p["message"].(string)
	if strings.Contains(msg, "Rejected:") {
		t.Fatalf("message %q mentions rejections with none present", msg)
	}
	if _, ok := p["fee_amount"]; ok {
		t.Fatal("zero fee must omit fee_amount")
	}

	s.RejectedCount = 2
	s.FeeAmount = 15
	p = s.Payload()
	msg, _ = p["message"].(string)
	if !strings.Contains(msg, "Rejected: 2") || !strings.Contains(msg, "Fee: 15.00 ETB") {
		t.Fatalf("message %q missing rejection or fee lines", msg)
	}
	if p["fee_amount"] != "15.00" {
		t.Fatalf("fee_amount = %v", p["fee_amount"])
	}
}

func TestBatchProgressCompleteHeadline(t *testing.T) {
	b := BatchProgress{Phone: "0911223344", BatchID: "3", ProgressPercentage: 100, SuccessfulCount: 10, CurrentAmount: 100}
	msg, _ := b.Payload()["message"].(string)
	if !strings.Contains(msg, "complete") || !strings.Contains(msg, "Ready for authorization") {
		t.Fatalf("message %q missing completion lines", msg)
	}

	b.ProgressPercentage = 40
	msg, _ = b.Payload()["message"].(string)
	if strings.Contains(msg, "Ready for authorization") {
		t.Fatalf("in-flight update %q must not announce readiness", msg)
	}
}

func TestJointBuildersCarryReferences(t *testing.T) {
	tests := []struct {
		name string
		p    Payload
		kind string
	}{
		{"approval", JointApproval{Phone: "0911223344", ApproverName: "A", AccountName: "Fam", TransactionType: "WITHDRAWAL", Amount: 10, TransactionReference: "TX-1"}.Payload(), TypeJointApproval},
		{"rejection", JointRejection{Phone: "0911223344", RejectorName: "R", AccountName: "Fam", TransactionType: "WITHDRAWAL", Amount: 10, TransactionReference: "TX-2"}.Payload(), TypeJointRejection},
		{"withdrawal request", JointWithdrawalRequest{Phone: "0911223344", InitiatorName: "I", AccountName: "Fam", Amount: 10, RequiredApprovals: 2, TransactionReference: "TX-3"}.Payload(), TypeJointWithdrawalRequest},
		{"deposit", JointDeposit{Phone: "0911223344", DepositorName: "D", AccountName: "Fam", Amount: 10, NewBalance: 20, TransactionReference: "TX-4"}.Payload(), TypeJointDeposit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.p["type"] != tc.kind {
				t.Fatalf("type = %v, expected %s", tc.p["type"], tc.kind)
			}
			ref, _ := tc.p["transaction_reference"].(string)
			msg, _ := tc.p["message"].(string)
			if ref == "" || !strings.Contains(msg, ref) {
				t.Fatalf("message %q does not carry reference %q", msg, ref)
			}
		})
	}
}

func TestJointInvitationExpiry(t *testing.T) {
	p := JointInvitation{Phone: "0911223344", InviterName: "Hana", AccountName: "Fam", ExpiresDays: 7}.Payload()
	msg, _ := p["message"].(string)
	if !strings.Contains(msg, "Expires in 7 days") {
		t.Fatalf("message %q missing expiry", msg)
	}
	if _, ok := p["product_name"]; ok {
		t.Fatal("absent product must omit the key")
	}
}

func TestCustomPayloadMergesExtra(t *testing.T) {
	p := Custom{
		Phone:   "0911223344",
		Message: "hello",
		Type:    "alert",
		Extra:   map[string]any{"campaign": "q3"},
	}.Payload()

	if p["type"] != "alert" || p["campaign"] != "q3" {
		t.Fatalf("unexpected payload %v", p)
	}

	p = Custom{Phone: "0911223344", Message: "hi"}.Payload()
	if p["type"] != TypeNotification {
		t.Fatalf("default type = %v", p["type"])
	}
}

func TestSubscriptionKind(t *testing.T) {
	if got := (Subscription{CustomerName: "A", ProductName: "P", BankName: "B"}).Payload()["type"]; got != "ordinary_subscription" {
		t.Fatalf("default kind type = %v", got)
	}
	if got := (Subscription{CustomerName: "A", ProductName: "P", BankName: "B", Kind: "premium"}).Payload()["type"]; got != "premium_subscription" {
		t.Fatalf("kind type = %v", got)
	}
}
