package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation 23505
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// storeErr 把逾時與連線層錯誤歸類為可重試的 ErrStoreUnavailable，其餘原樣回傳
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	if pgconn.Timeout(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return err
}
