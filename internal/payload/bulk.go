package payload

import (
	"fmt"
	"strings"
)

// BulkAuthorization notifies the batch owner that an authorizer
// approved a bulk disbursement.
type BulkAuthorization struct {
	Phone            string
	AuthorizerName   string
	BatchReference   string
	TransactionCount int
	TotalAmount      float64
	ProductName      string
}

func (b BulkAuthorization) Payload() Payload {
	msg := fmt.Sprintf("%s authorized bulk disbursement %s with %d transactions totaling %s ETB",
		b.AuthorizerName, b.BatchReference, b.TransactionCount, amount(b.TotalAmount))
	p := Payload{
		"phone":             b.Phone,
		"message":           msg,
		"type":              TypeBulkAuthorization,
		"authorizer_name":   b.AuthorizerName,
		"batch_reference":   b.BatchReference,
		"transaction_count": b.TransactionCount,
		"total_amount":      amount(b.TotalAmount),
	}
	if b.ProductName != "" {
		p["product_name"] = b.ProductName
	}
	return p
}

// BulkRejection tells a recipient their expected transfer was not
// approved, with the reason and optional guidance.
type BulkRejection struct {
	Phone           string
	RecipientName   string
	Amount          float64
	SenderName      string
	RejectionReason string
	BatchReference  string
	NextSteps       string
}

func (b BulkRejection) Payload() Payload {
	lines := []string{
		"Transfer not approved",
		"Expected: " + amount(b.Amount) + " ETB",
		"From: " + b.SenderName,
		"Reason: " + b.RejectionReason,
		"Ref: " + b.BatchReference,
	}
	if b.NextSteps != "" {
		lines = append(lines, "Next: "+b.NextSteps)
	}
	p := Payload{
		"phone":            b.Phone,
		"message":          strings.Join(lines, "\n"),
		"type":             TypeBulkRejection,
		"recipient_name":   b.RecipientName,
		"amount":           amount(b.Amount),
		"sender_name":      b.SenderName,
		"rejection_reason": b.RejectionReason,
		"batch_reference":  b.BatchReference,
		"enhanced":         true,
	}
	if b.NextSteps != "" {
		p["next_steps"] = b.NextSteps
	}
	return p
}

// BulkReceived confirms an incoming bulk transfer to its recipient.
type BulkReceived struct {
	Phone           string
	RecipientName   string
	Amount          float64
	SenderName      string
	BatchReference  string
	ProductName     string
	TransactionTime string
}

func (b BulkReceived) Payload() Payload {
	when := b.TransactionTime
	if when == "" {
		when = "now"
	}
	timeline := "Time: " + when
	if b.ProductName != "" {
		timeline += " to your " + b.ProductName
	}
	lines := []string{
		"Bulk transfer received",
		"Amount: " + amount(b.Amount) + " ETB",
		"From: " + b.SenderName,
		timeline,
		"Ref: " + b.BatchReference,
	}
	p := Payload{
		"phone":           b.Phone,
		"message":         strings.Join(lines, "\n"),
		"type":            TypeBulkReceived,
		"recipient_name":  b.RecipientName,
		"amount":          amount(b.Amount),
		"sender_name":     b.SenderName,
		"batch_reference": b.BatchReference,
		"enhanced":        true,
	}
	if b.ProductName != "" {
		p["product_name"] = b.ProductName
	}
	if b.TransactionTime != "" {
		p["transaction_time"] = b.TransactionTime
	}
	return p
}

// BulkStatus reports the terminal or interim state of a whole batch to
// its sender. ProcessingMinutes is optional; nil omits the field.
type BulkStatus struct {
	Phone             string
	SenderName        string
	BatchID           string
	TransactionCount  int
	TotalAmount       float64
	Status            string
	ProcessingMinutes *float64
	RejectionReason   string
}

func (b BulkStatus) Payload() Payload {
	var headline, action, detail string
	switch strings.ToUpper(b.Status) {
	case "COMPLETED":
		headline = "Bulk disbursement complete"
		action = "transfers completed"
		detail = "All recipients notified"
	case "REJECTED":
		headline = "Bulk disbursement rejected"
		action = "transfers rejected"
		reason := b.RejectionReason
		if reason == "" {
			reason = "Authorization denied"
		}
		detail = "Reason: " + reason + "\nYour funds remain safe"
	default:
		headline = "Bulk disbursement " + strings.ToUpper(b.Status)
		action = "transactions processed"
		detail = "Status: " + b.Status
	}

	lines := []string{
		headline,
		b.SenderName,
		"Batch: " + b.BatchID,
		fmt.Sprintf("%d %s", b.TransactionCount, action),
		"Total: " + amount(b.TotalAmount) + " ETB",
	}
	if b.ProcessingMinutes != nil {
		lines = append(lines, fmt.Sprintf("Processing: %.1f minutes", *b.ProcessingMinutes))
	}
	lines = append(lines, detail)

	p := Payload{
		"phone":             b.Phone,
		"message":           strings.Join(lines, "\n"),
		"type":              TypeBulkStatus,
		"sender_name":       b.SenderName,
		"batch_id":          b.BatchID,
		"transaction_count": b.TransactionCount,
		"total_amount":      amount(b.TotalAmount),
		"status":            b.Status,
		"enhanced":          true,
	}
	if b.ProcessingMinutes != nil {
		p["processing_time_minutes"] = *b.ProcessingMinutes
	}
	if b.RejectionReason != "" {
		p["rejection_reason"] = b.RejectionReason
	}
	return p
}

// CSVUpload confirms that a disbursement batch file was accepted.
type CSVUpload struct {
	Phone               string
	BatchID             string
	TransactionCount    int
	TotalAmount         float64
	UploadTime          string
	EstimatedCompletion string
}

func (c CSVUpload) Payload() Payload {
	uploaded := c.UploadTime
	if uploaded == "" {
		uploaded = "now"
	}
	lines := []string{
		"CSV upload successful",
		"Batch ID: " + c.BatchID,
		fmt.Sprintf("Transactions: %d", c.TransactionCount),
		"Total: " + amount(c.TotalAmount) + " ETB",
		"Uploaded: " + uploaded,
		"Processing starts immediately",
	}
	if c.EstimatedCompletion != "" {
		lines = append(lines, "Est. completion: "+c.EstimatedCompletion)
	}
	lines = append(lines, "You'll receive authorization notifications")

	p := Payload{
		"phone":             c.Phone,
		"message":           strings.Join(lines, "\n"),
		"type":              TypeCSVUpload,
		"batch_id":          c.BatchID,
		"transaction_count": c.TransactionCount,
		"total_amount":      amount(c.TotalAmount),
		"enhanced":          true,
	}
	if c.UploadTime != "" {
		p["upload_time"] = c.UploadTime
	}
	if c.EstimatedCompletion != "" {
		p["estimated_completion_time"] = c.EstimatedCompletion
	}
	return p
}

// NonSubscriberInvitation invites an unregistered recipient to
// subscribe so a waiting transfer can be released to them.
type NonSubscriberInvitation struct {
	Phone                    string
	SenderName               string
	ExpectedAmount           float64
	ProductName              string
	FinancialInstitutionName string
	BatchReference           string
}

func (n NonSubscriberInvitation) Payload() Payload {
	lines := []string{
		"Money waiting for you",
		amount(n.ExpectedAmount) + " ETB from " + n.SenderName,
		"Subscribe to " + n.ProductName + " (" + n.FinancialInstitutionName + ") to receive",
		"Free subscription, instant activation",
		"Ref: " + n.BatchReference,
	}
	return Payload{
		"phone":                      n.Phone,
		"message":                    strings.Join(lines, "\n"),
		"type":                       TypeNonSubscriberInvitation,
		"sender_name":                n.SenderName,
		"expected_amount":            amount(n.ExpectedAmount),
		"product_name":               n.ProductName,
		"financial_institution_name": n.FinancialInstitutionName,
		"batch_reference":            n.BatchReference,
		"enhanced":                   true,
	}
}

// BatchProgress reports in-flight processing progress for a batch.
type BatchProgress struct {
	Phone              string
	BatchID            string
	ProgressPercentage int
	SuccessfulCount    int
	FailedCount        int
	CurrentAmount      float64
}

func (b BatchProgress) Payload() Payload {
	headline := "Batch processing update"
	var next string
	if b.ProgressPercentage == 100 {
		headline = "Batch processing complete"
		next = "Ready for authorization"
	}
	lines := []string{
		headline,
		"Batch: " + b.BatchID,
		fmt.Sprintf("%d%% complete", b.ProgressPercentage),
		fmt.Sprintf("Success: %d", b.SuccessfulCount),
		fmt.Sprintf("Failed: %d", b.FailedCount),
		"Processed: " + amount(b.CurrentAmount) + " ETB",
	}
	if next != "" {
		lines = append(lines, next)
	}
	return Payload{
		"phone":               b.Phone,
		"message":             strings.Join(lines, "\n"),
		"type":                TypeBatchProgress,
		"batch_id":            b.BatchID,
		"progress_percentage": b.ProgressPercentage,
		"successful_count":    b.SuccessfulCount,
		"failed_count":        b.FailedCount,
		"current_amount":      amount(b.CurrentAmount),
		"enhanced":            true,
	}
}

// SelectiveAuthSummary summarizes a partially authorized batch for its
// sender. A zero fee omits the fee_amount field.
type SelectiveAuthSummary struct {
	Phone            string
	SenderName       string
	BatchID          string
	AuthorizedCount  int
	RejectedCount    int
	AuthorizedAmount float64
	FeeAmount        float64
}

func (s SelectiveAuthSummary) Payload() Payload {
	lines := []string{
		"Selective authorization complete",
		s.SenderName,
		"Batch: " + s.BatchID,
		fmt.Sprintf("Authorized: %d", s.AuthorizedCount),
	}
	if s.RejectedCount > 0 {
		lines = append(lines, fmt.Sprintf("Rejected: %d", s.RejectedCount))
	}
	lines = append(lines, "Amount: "+amount(s.AuthorizedAmount)+" ETB")
	if s.FeeAmount > 0 {
		lines = append(lines, "Fee: "+amount(s.FeeAmount)+" ETB")
	}
	lines = append(lines, "Recipients notified")
	if s.RejectedCount > 0 {
		lines = append(lines, "Rejected transactions can be retried")
	}

	p := Payload{
		"phone":             s.Phone,
		"message":           strings.Join(lines, "\n"),
		"type":              TypeSelectiveAuthSummary,
		"sender_name":       s.SenderName,
		"batch_id":          s.BatchID,
		"authorized_count":  s.AuthorizedCount,
		"rejected_count":    s.RejectedCount,
		"authorized_amount": amount(s.AuthorizedAmount),
		"enhanced":          true,
	}
	if s.FeeAmount > 0 {
		p["fee_amount"] = amount(s.FeeAmount)
	}
	return p
}
