package domain

import (
	"fmt"
	"sync/atomic"
)

// ContractKind tells which side of a contract was broken.
type ContractKind string

const (
	Precondition  ContractKind = "precondition"
	Postcondition ContractKind = "postcondition"
	Invariant     ContractKind = "invariant"
)

// ContractViolation is the panic value raised when a caller or the engine
// itself breaks a contract. It signals a programming error, not a game event.
type ContractViolation struct {
	Kind    ContractKind
	Message string
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("%s violated: %s", c.Kind, c.Message)
}

var contractChecks atomic.Bool

func init() {
	contractChecks.Store(true)
}

// SetContractChecks turns contract checking on or off for the whole package.
// With checks off, out of range arguments fall through to Go's own bounds
// checks.
func SetContractChecks(enabled bool) {
	contractChecks.Store(enabled)
}

func ContractChecksEnabled() bool {
	return contractChecks.Load()
}

func check(kind ContractKind, cond bool, format string, args ...any) {
	if cond || !contractChecks.Load() {
		return
	}
	panic(&ContractViolation{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func precondition(cond bool, format string, args ...any) {
	check(Precondition, cond, format, args...)
}

func postcondition(cond bool, format string, args ...any) {
	check(Postcondition, cond, format, args...)
}

func invariant(cond bool, format string, args ...any) {
	check(Invariant, cond, format, args...)
}
