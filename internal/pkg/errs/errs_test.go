package errs_test

import (
	"errors"
	"testing"

	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("creditDays", 500, 1, 365)

		assert.Equal(t, "creditDays", err.ParamName)
		assert.Equal(t, 500, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 365, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 500 is creditDays, min value is 1, max value is 365", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("qty", -5, 1, 1000, cause)

		assert.Equal(t, "qty", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is qty, min value is 1, max value is 1000 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("gemOrderNumber")

		assert.Equal(t, "gemOrderNumber", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: gemOrderNumber", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("gemOrderNumber", cause)

		assert.Equal(t, "gemOrderNumber", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: gemOrderNumber (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("version")

		assert.Equal(t, "version", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: version", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid semver")
		err := errs.NewVersionIsInvalidErrorWithCause("version", cause)

		assert.Equal(t, "version", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: version (cause: invalid semver)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("creditDays", 500, 1, 365)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("gemOrderNumber")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		versionInvalidErr := errs.NewVersionIsInvalidError("version")
		require.ErrorIs(t, versionInvalidErr, errs.ErrVersionIsInvalid)
	})
}
