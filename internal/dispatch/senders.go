package dispatch

import (
	"context"

	"github.com/example/sms-dispatch/internal/payload"
	"github.com/example/sms-dispatch/internal/sms"
)

// Reference prefixes per notification intent. Intents whose sender
// accepts a caller-supplied reference (transaction, deposit,
// withdrawal, transfer, subscription) correlate with the caller's
// business transaction instead.
const (
	refPrefixCustom          = "CUSTOM"
	refPrefixBulkAuth        = "BULK_AUTH"
	refPrefixBulkRejection   = "BULK_REJ"
	refPrefixBulkReceived    = "BULK_RECV"
	refPrefixBulkStatus      = "BULK_STATUS"
	refPrefixCSVUpload       = "CSV_UPLOAD"
	refPrefixNonSubscriber   = "NON_SUB_INV"
	refPrefixBatchProgress   = "BATCH_PROGRESS"
	refPrefixSelectiveAuth   = "SEL_AUTH_SUM"
	refPrefixJointInvitation = "JA_INV"
	refPrefixJointApproval   = "JA_APP"
	refPrefixJointRejection  = "JA_REJ"
	refPrefixJointWithdrawal = "JA_WD_REQ"
	refPrefixJointDeposit    = "JA_DEP"
)

func (e *Engine) SendTransaction(ctx context.Context, reference string, t payload.Transaction, phone string) bool {
	return e.Send(ctx, reference, t.Payload(), phone)
}

func (e *Engine) SendDeposit(ctx context.Context, reference string, d payload.Deposit) bool {
	return e.Send(ctx, reference, d.Payload(), d.Phone)
}

func (e *Engine) SendWithdrawal(ctx context.Context, reference string, w payload.Withdrawal) bool {
	return e.Send(ctx, reference, w.Payload(), w.Phone)
}

func (e *Engine) SendTransfer(ctx context.Context, reference string, t payload.Transfer, phone string) bool {
	return e.Send(ctx, reference, t.Payload(), phone)
}

func (e *Engine) SendSubscription(ctx context.Context, reference string, s payload.Subscription, phone string) bool {
	return e.Send(ctx, reference, s.Payload(), phone)
}

func (e *Engine) SendBulkAuthorization(ctx context.Context, b payload.BulkAuthorization) bool {
	return e.Send(ctx, sms.NewReference(refPrefixBulkAuth), b.Payload(), b.Phone)
}

func (e *Engine) SendBulkRejection(ctx context.Context, b payload.BulkRejection) bool {
	return e.Send(ctx, sms.NewReference(refPrefixBulkRejection), b.Payload(), b.Phone)
}

func (e *Engine) SendBulkReceived(ctx context.Context, b payload.BulkReceived) bool {
	return e.Send(ctx, sms.NewReference(refPrefixBulkReceived), b.Payload(), b.Phone)
}

func (e *Engine) SendBulkStatus(ctx context.Context, b payload.BulkStatus) bool {
	return e.Send(ctx, sms.NewReference(refPrefixBulkStatus), b.Payload(), b.Phone)
}

func (e *Engine) SendCSVUploadConfirmation(ctx context.Context, c payload.CSVUpload) bool {
	return e.Send(ctx, sms.NewReference(refPrefixCSVUpload), c.Payload(), c.Phone)
}

func (e *Engine) SendNonSubscriberInvitation(ctx context.Context, n payload.NonSubscriberInvitation) bool {
	return e.Send(ctx, sms.NewReference(refPrefixNonSubscriber), n.Payload(), n.Phone)
}

func (e *Engine) SendBatchProgress(ctx context.Context, b payload.BatchProgress) bool {
	return e.Send(ctx, sms.NewReference(refPrefixBatchProgress), b.Payload(), b.Phone)
}

func (e *Engine) SendSelectiveAuthorizationSummary(ctx context.Context, s payload.SelectiveAuthSummary) bool {
	return e.Send(ctx, sms.NewReference(refPrefixSelectiveAuth), s.Payload(), s.Phone)
}

func (e *Engine) SendJointInvitation(ctx context.Context, j payload.JointInvitation) bool {
	return e.Send(ctx, sms.NewReference(refPrefixJointInvitation), j.Payload(), j.Phone)
}

func (e *Engine) SendJointApproval(ctx context.Context, j payload.JointApproval) bool {
	return e.Send(ctx, sms.NewReference(refPrefixJointApproval), j.Payload(), j.Phone)
}

func (e *Engine) SendJointRejection(ctx context.Context, j payload.JointRejection) bool {
	return e.Send(ctx, sms.NewReference(refPrefixJointRejection), j.Payload(), j.Phone)
}

func (e *Engine) SendJointWithdrawalRequest(ctx context.Context, j payload.JointWithdrawalRequest) bool {
	return e.Send(ctx, sms.NewReference(refPrefixJointWithdrawal), j.Payload(), j.Phone)
}

func (e *Engine) SendJointDeposit(ctx context.Context, j payload.JointDeposit) bool {
	return e.Send(ctx, sms.NewReference(refPrefixJointDeposit), j.Payload(), j.Phone)
}
