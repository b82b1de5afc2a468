/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	// ErrDatabaseConnectionNotInitialized is returned when a query runs
	// before Init.
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")
	// ErrDatabaseURLRequired is returned when no connection string was
	// provided.
	ErrDatabaseURLRequired = errors.New("database URL is required")
	// ErrDatabaseNameNotSpecified is returned when the connection string
	// carries no database name.
	ErrDatabaseNameNotSpecified = errors.New("database name not specified in connection string")
	// ErrUnknownMeasurementColumn is returned when a measurement query
	// names a column outside the fixed measurement set.
	ErrUnknownMeasurementColumn = errors.New("unknown measurement column")
)
