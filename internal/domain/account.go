package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the closed set of account variants. Balance is only ever
// mutated through Deposit and Withdraw; a rejected operation leaves the
// account untouched.
type Account interface {
	Number() int
	Branch() string
	Balance() decimal.Decimal
	OwnerID() uuid.UUID
	History() *Ledger
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

type BasicAccount struct {
	number  int
	branch  string
	balance decimal.Decimal
	ownerID uuid.UUID
	history *Ledger
}

func NewBasicAccount(ownerID uuid.UUID, number int, branch string, openingBalance decimal.Decimal) *BasicAccount {
	return &BasicAccount{
		number:  number,
		branch:  branch,
		balance: openingBalance,
		ownerID: ownerID,
		history: NewLedger(),
	}
}

func (a *BasicAccount) Number() int              { return a.number }
func (a *BasicAccount) Branch() string           { return a.branch }
func (a *BasicAccount) Balance() decimal.Decimal { return a.balance }
func (a *BasicAccount) OwnerID() uuid.UUID       { return a.ownerID }
func (a *BasicAccount) History() *Ledger         { return a.history }

func (a *BasicAccount) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

func (a *BasicAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckingAccount adds a per-withdrawal cap and a maximum number of
// successful withdrawals on top of the base account rules.
type CheckingAccount struct {
	BasicAccount
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
}

func NewCheckingAccount(ownerID uuid.UUID, number int, branch string, openingBalance decimal.Decimal, withdrawalLimit decimal.Decimal, maxWithdrawals int) *CheckingAccount {
	return &CheckingAccount{
		BasicAccount:    *NewBasicAccount(ownerID, number, branch, openingBalance),
		withdrawalLimit: withdrawalLimit,
		maxWithdrawals:  maxWithdrawals,
	}
}

func (a *CheckingAccount) WithdrawalLimit() decimal.Decimal { return a.withdrawalLimit }
func (a *CheckingAccount) MaxWithdrawals() int              { return a.maxWithdrawals }

// Withdraw checks the per-transaction cap first, then the withdrawal
// count, then delegates to the base funds and amount checks. The count
// covers every withdrawal ever recorded on the account.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.withdrawalLimit) {
		return ErrWithdrawalLimitExceeded
	}
	if a.history.Count(KindWithdrawal) >= a.maxWithdrawals {
		return ErrWithdrawalCountExceeded
	}
	return a.BasicAccount.Withdraw(amount)
}

func (a *CheckingAccount) SetWithdrawalLimit(newLimit decimal.Decimal) error {
	if newLimit.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	a.withdrawalLimit = newLimit
	return nil
}
