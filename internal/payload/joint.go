package payload

import (
	"fmt"
	"strings"
)

// JointInvitation invites a member to join a joint savings account.
type JointInvitation struct {
	Phone       string
	InviterName string
	AccountName string
	ProductName string
	ExpiresDays int
}

func (j JointInvitation) Payload() Payload {
	msg := fmt.Sprintf("You've been invited by %s to join joint account '%s'", j.InviterName, j.AccountName)
	if j.ExpiresDays > 0 {
		msg += fmt.Sprintf(". Expires in %d days", j.ExpiresDays)
	}
	p := Payload{
		"phone":        j.Phone,
		"message":      msg,
		"type":         TypeJointInvitation,
		"inviter_name": j.InviterName,
		"account_name": j.AccountName,
		"expires_days": j.ExpiresDays,
	}
	if j.ProductName != "" {
		p["product_name"] = j.ProductName
	}
	return p
}

// JointApproval notifies members that a pending joint-account
// transaction was approved.
type JointApproval struct {
	Phone                string
	ApproverName         string
	AccountName          string
	TransactionType      string
	Amount               float64
	TransactionReference string
}

func (j JointApproval) Payload() Payload {
	msg := fmt.Sprintf("%s approved %s of %s ETB from '%s'",
		j.ApproverName, strings.ToLower(j.TransactionType), amount(j.Amount), j.AccountName)
	if j.TransactionReference != "" {
		msg += " (Ref: " + j.TransactionReference + ")"
	}
	p := Payload{
		"phone":            j.Phone,
		"message":          msg,
		"type":             TypeJointApproval,
		"approver_name":    j.ApproverName,
		"account_name":     j.AccountName,
		"transaction_type": j.TransactionType,
		"amount":           amount(j.Amount),
	}
	if j.TransactionReference != "" {
		p["transaction_reference"] = j.TransactionReference
	}
	return p
}

// JointRejection notifies members that a pending joint-account
// transaction was rejected.
type JointRejection struct {
	Phone                string
	RejectorName         string
	AccountName          string
	TransactionType      string
	Amount               float64
	Reason               string
	TransactionReference string
}

func (j JointRejection) Payload() Payload {
	msg := fmt.Sprintf("%s rejected %s of %s ETB from '%s'",
		j.RejectorName, strings.ToLower(j.TransactionType), amount(j.Amount), j.AccountName)
	if j.Reason != "" {
		msg += ". Reason: " + j.Reason
	}
	if j.TransactionReference != "" {
		msg += " (Ref: " + j.TransactionReference + ")"
	}
	p := Payload{
		"phone":            j.Phone,
		"message":          msg,
		"type":             TypeJointRejection,
		"rejector_name":    j.RejectorName,
		"account_name":     j.AccountName,
		"transaction_type": j.TransactionType,
		"amount":           amount(j.Amount),
	}
	if j.Reason != "" {
		p["rejection_reason"] = j.Reason
	}
	if j.TransactionReference != "" {
		p["transaction_reference"] = j.TransactionReference
	}
	return p
}

// JointWithdrawalRequest asks the other authorizers of a joint account
// to approve a withdrawal.
type JointWithdrawalRequest struct {
	Phone                string
	InitiatorName        string
	AccountName          string
	Amount               float64
	RequiredApprovals    int
	ExpiresAt            string
	TransactionReference string
}

func (j JointWithdrawalRequest) Payload() Payload {
	msg := fmt.Sprintf("%s requests withdrawal of %s ETB from '%s'. %d approval(s) needed",
		j.InitiatorName, amount(j.Amount), j.AccountName, j.RequiredApprovals)
	if j.ExpiresAt != "" {
		msg += ". Expires: " + j.ExpiresAt
	}
	if j.TransactionReference != "" {
		msg += " (Ref: " + j.TransactionReference + ")"
	}
	p := Payload{
		"phone":              j.Phone,
		"message":            msg,
		"type":               TypeJointWithdrawalRequest,
		"initiator_name":     j.InitiatorName,
		"account_name":       j.AccountName,
		"amount":             amount(j.Amount),
		"required_approvals": j.RequiredApprovals,
	}
	if j.ExpiresAt != "" {
		p["expires_at"] = j.ExpiresAt
	}
	if j.TransactionReference != "" {
		p["transaction_reference"] = j.TransactionReference
	}
	return p
}

// JointDeposit announces a deposit into a joint account to all members.
type JointDeposit struct {
	Phone                string
	DepositorName        string
	AccountName          string
	Amount               float64
	NewBalance           float64
	TransactionReference string
}

func (j JointDeposit) Payload() Payload {
	msg := fmt.Sprintf("%s deposited %s ETB to '%s'. New balance: %s ETB",
		j.DepositorName, amount(j.Amount), j.AccountName, amount(j.NewBalance))
	if j.TransactionReference != "" {
		msg += " (Ref: " + j.TransactionReference + ")"
	}
	p := Payload{
		"phone":          j.Phone,
		"message":        msg,
		"type":           TypeJointDeposit,
		"depositor_name": j.DepositorName,
		"account_name":   j.AccountName,
		"amount":         amount(j.Amount),
		"new_balance":    amount(j.NewBalance),
	}
	if j.TransactionReference != "" {
		p["transaction_reference"] = j.TransactionReference
	}
	return p
}
