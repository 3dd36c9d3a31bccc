package domain

import "github.com/shopspring/decimal"

// Transaction is a monetary movement that knows how to apply itself to
// an account. A ledger entry is appended only when the account primitive
// succeeds; a rejected transaction leaves balance and ledger untouched.
type Transaction interface {
	Amount() decimal.Decimal
	Apply(account Account) error
}

type Deposit struct {
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (t Deposit) Amount() decimal.Decimal { return t.amount }

func (t Deposit) Apply(account Account) error {
	if err := account.Deposit(t.amount); err != nil {
		return err
	}
	account.History().Append(KindDeposit, t.amount)
	return nil
}

type Withdrawal struct {
	amount decimal.Decimal
}

func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (t Withdrawal) Amount() decimal.Decimal { return t.amount }

func (t Withdrawal) Apply(account Account) error {
	if err := account.Withdraw(t.amount); err != nil {
		return err
	}
	account.History().Append(KindWithdrawal, t.amount)
	return nil
}
