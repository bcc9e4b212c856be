// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingMessage is returned when a message cannot be (de)serialised
	// for the redis store.
	ErrEncodingMessage = errors.New("failed to encode message")

	// ErrRedis is returned when a redis command fails.
	ErrRedis = errors.New("redis command failed")

	// ErrUnsupportedDriver is returned for an unknown storage driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)
