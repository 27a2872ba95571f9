package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an account with the same login
	// already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrAccountNotFound is returned when no account matches a login.
	ErrAccountNotFound = errors.New("no account was found")

	// ErrAssetNotFound is returned when no asset has the requested id.
	ErrAssetNotFound = errors.New("asset was not found")

	// ErrNoPendingPayout is returned by Withdraw when the account is owed
	// nothing.
	ErrNoPendingPayout = errors.New("no pending payout")

	// ErrNoSession is returned by the client session store when nobody is
	// logged in.
	ErrNoSession = errors.New("no active session")

	// ErrTransient marks failures that may succeed if attempted again.
	ErrTransient = errors.New("transient database failure")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
