// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"newsboard/internal/apperr"
)

// PostgreSQL SQLSTATE codes the stores reclassify.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeNotNullViolation    = "23502"
	codeInvalidTextRepr     = "22P02"
	codeStringTooLong       = "22001"
	codeNumericOutOfRange   = "22003"
	codeCheckViolation      = "23514"
)

// pgCode returns the SQLSTATE of a PostgreSQL error, or "" for anything else.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// classify converts integrity and input-syntax errors raised by PostgreSQL
// into client errors so driver text never reaches the response. Other errors
// are wrapped with op and stay internal.
func classify(op string, err error) error {
	switch pgCode(err) {
	case codeForeignKeyViolation, codeNotNullViolation, codeInvalidTextRepr,
		codeStringTooLong, codeNumericOutOfRange, codeCheckViolation:
		return apperr.Wrap(apperr.KindBadRequest, apperr.MsgBadRequest, fmt.Errorf("%s: %w", op, err))
	case codeUniqueViolation:
		return apperr.Wrap(apperr.KindConflict, "Already exists", fmt.Errorf("%s: %w", op, err))
	}
	return fmt.Errorf("%s: %w", op, err)
}
