package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError_Nil(t *testing.T) {
	assert.NoError(t, MapDBError(nil))
}

func TestMapDBError_ContextErrors(t *testing.T) {
	err := MapDBError(fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.Equal(t, ErrCodeTimeout, GetCode(err))

	err = MapDBError(context.Canceled)
	assert.Equal(t, ErrCodeCanceled, GetCode(err))
}

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(fmt.Errorf("get project: %w", pgx.ErrNoRows))
	assert.True(t, IsNotFound(err))
	assert.True(t, stderrors.Is(err, pgx.ErrNoRows))
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	tests := []struct {
		name      string
		pgErr     *pgconn.PgError
		wantField string
	}{
		{
			name:      "column name metadata",
			pgErr:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, ColumnName: "email"},
			wantField: "email",
		},
		{
			name: "detail parsing",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.UniqueViolation,
				Detail: `Key (email)=(a@example.com) already exists.`,
			},
			wantField: "email",
		},
		{
			name:      "constraint name inference",
			pgErr:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "profiles_email_key"},
			wantField: "email",
		},
		{
			name:      "ambiguous constraint stays silent",
			pgErr:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "briefings_company_title_key"},
			wantField: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			assert.True(t, IsConflict(err))
			assert.Equal(t, tt.wantField, GetField(err))
		})
	}
}

func TestMapDBError_ForeignKeyViolation(t *testing.T) {
	err := MapDBError(&pgconn.PgError{
		Code:   pgerrcode.ForeignKeyViolation,
		Detail: `Key (id)=(x) is still referenced from table "briefings".`,
	})
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "Briefing")
}

func TestMapDBError_CheckViolation(t *testing.T) {
	err := MapDBError(fmt.Errorf("insert briefing: %w", &pgconn.PgError{
		Code:       pgerrcode.CheckViolation,
		ColumnName: "experience_level",
	}))
	assert.True(t, IsValidation(err))
	assert.Equal(t, "experience_level", GetField(err))
}

func TestMapDBError_UnrecognizedPassthrough(t *testing.T) {
	original := stderrors.New("connection refused")
	mapped := MapDBError(original)
	assert.ErrorIs(t, mapped, original)
	var appErr *AppError
	assert.False(t, stderrors.As(mapped, &appErr))
}

func TestMapDBError_OtherPgError(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	var appErr *AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, ErrCodeInternal, appErr.Code)
}
