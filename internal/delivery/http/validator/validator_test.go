package validator

import (
	"net/http"
	"testing"

	domainerrors "vetclinic/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Edad     int    `json:"edad" validate:"gte=0"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Username: "carlos", Edad: 30})
	assert.NoError(t, err)
}

func TestCustomValidator_RequiredField(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Edad: 30})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	assert.Equal(t, "username", appErr.Details())
}

func TestCustomValidator_RangeRule(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Username: "carlos", Edad: -1})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "edad", appErr.Details())
	assert.Contains(t, appErr.Message(), "gte")
}
