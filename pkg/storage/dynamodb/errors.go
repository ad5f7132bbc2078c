package dynamodb

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/points-ledger/pkg/storage"
)

const conditionalCheckFailed = "ConditionalCheckFailed"

// cancelledAt reports whether the transact item at index i failed its condition.
func cancelledAt(txc *types.TransactionCanceledException, i int) bool {
	if i >= len(txc.CancellationReasons) {
		return false
	}
	code := txc.CancellationReasons[i].Code
	return code != nil && *code == conditionalCheckFailed
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// isContention reports errors that mean another writer or the table's capacity got in the way.
func isContention(err error) bool {
	var (
		conflict   *types.TransactionConflictException
		inProgress *types.TransactionInProgressException
		throughput *types.ProvisionedThroughputExceededException
		limit      *types.RequestLimitExceeded
	)
	return errors.As(err, &conflict) ||
		errors.As(err, &inProgress) ||
		errors.As(err, &throughput) ||
		errors.As(err, &limit)
}

// storeErr wraps a failed client call. Throttling and contention are reported
// as storage.ErrUnavailable.
func storeErr(msg string, err error) error {
	if isContention(err) {
		return fmt.Errorf("%s: %w: %w", msg, storage.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// retryable marks a transient failure of a transaction's read phase as a
// write conflict, so the retry loop runs the whole operation again.
func retryable(err error) error {
	if errors.Is(err, storage.ErrUnavailable) {
		return fmt.Errorf("%w: %v", storage.ErrWriteConflict, err)
	}
	return err
}
