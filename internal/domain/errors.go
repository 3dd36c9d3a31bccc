package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrDuplicateTaxID = errors.New("Tax identifier already registered")
var ErrNoAccount = errors.New("Client has no account")
var ErrInvalidAmount = errors.New("Amount must be greater than zero")
var ErrInsufficientFunds = errors.New("Insufficient balance")
var ErrWithdrawalLimitExceeded = errors.New("Amount exceeds the withdrawal limit")
var ErrWithdrawalCountExceeded = errors.New("Maximum number of withdrawals exceeded")
var ErrNotCheckingAccount = errors.New("Operation not available for this account type")
var ErrAccountNotOwned = errors.New("Account does not belong to this client")
