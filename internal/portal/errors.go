package portal

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession means the operation needs a connected wallet
	ErrNoSession = errors.New("wallet is not connected")
	// ErrEmptyGifLink means submitGif was called without a link
	ErrEmptyGifLink = errors.New("gif link is empty")
	// ErrAlreadyInitialized means the board account exists already
	ErrAlreadyInitialized = errors.New("board account is already initialized")
	// ErrNotInitialized means the board account does not exist yet
	ErrNotInitialized = errors.New("board account is not initialized")
)

// RemoteCallError is a failed call to the board program
type RemoteCallError struct {
	Method string
	Err    error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("remote call %s failed: %v", e.Method, e.Err)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// IsRemoteCallError checks if error is RemoteCallError
func IsRemoteCallError(err error) bool {
	var target *RemoteCallError
	return errors.As(err, &target)
}

// AccountFetchError is a failed read of the board account that is not a plain "does not exist"
type AccountFetchError struct {
	Err error
}

func (e *AccountFetchError) Error() string {
	return fmt.Sprintf("failed to fetch board account: %v", e.Err)
}

func (e *AccountFetchError) Unwrap() error {
	return e.Err
}

// IsAccountFetchError checks if error is AccountFetchError
func IsAccountFetchError(err error) bool {
	var target *AccountFetchError
	return errors.As(err, &target)
}
