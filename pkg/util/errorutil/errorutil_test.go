package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestDomainErrorStatuses(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewLevelExperienceMismatch("SENIOR", 5), CodeLevelExperienceMismatch, http.StatusBadRequest},
		{NewDuplicatedMemberID("m-1", nil), CodeDuplicatedMemberID, http.StatusConflict},
		{NewNoDeveloper("m-1"), CodeNoDeveloper, http.StatusNotFound},
		{NewValidationError("bad", nil), CodeValidationFailed, http.StatusBadRequest},
		{NewInvalidRequest("bad"), CodeInvalidRequest, http.StatusBadRequest},
		{NewUnauthorized("no"), CodeUnauthorized, http.StatusUnauthorized},
		{NewForbidden("no"), CodeForbidden, http.StatusForbidden},
		{NewInternalError(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			domainErr := ToDomainError(tc.err)
			assert.Equal(t, tc.code, domainErr.Code)
			assert.Equal(t, tc.status, domainErr.HTTPStatus)
			assert.True(t, HasCode(tc.err, tc.code))
		})
	}
}

func TestToDomainErrorClassifies(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
	assert.NoError(t, MapError(nil))

	wrapped := fmt.Errorf("lookup: %w", NewNoDeveloper("m-1"))
	assert.Equal(t, CodeNoDeveloper, ToDomainError(wrapped).Code)

	assert.Equal(t, CodeNotFound, ToDomainError(fmt.Errorf("scan: %w", pgx.ErrNoRows)).Code)

	cause := errors.New("connection reset")
	internal := ToDomainError(cause)
	assert.Equal(t, CodeInternal, internal.Code)
	assert.ErrorIs(t, internal, cause)
}

func TestDetailsCarryContext(t *testing.T) {
	mismatch := ToDomainError(NewLevelExperienceMismatch("JUNIOR", 12))
	assert.Equal(t, map[string]any{"developerLevel": "JUNIOR", "experienceYears": 12}, mismatch.Details)

	cause := errors.New("unique violation")
	dup := NewDuplicatedMemberID("m-1", cause)
	assert.ErrorIs(t, dup, cause)
	assert.Equal(t, "m-1", ToDomainError(dup).Details["memberId"])
}
