package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeValidationError_StringDetail(t *testing.T) {
	body := []byte(`{"detail": "El nombre de usuario ya está en uso"}`)
	ve := decodeValidationError(400, body)

	require.Equal(t, 400, ve.StatusCode)
	require.Equal(t, "El nombre de usuario ya está en uso", ve.Message)
	require.Empty(t, ve.Fields)
	require.Equal(t, "El nombre de usuario ya está en uso", ve.Error())
}

func TestDecodeValidationError_FieldList(t *testing.T) {
	body := []byte(`{"detail": [
		{"loc": ["body", "email"], "msg": "value is not a valid email address"},
		{"loc": ["body", "password"], "msg": "ensure this value has at least 6 characters"}
	]}`)
	ve := decodeValidationError(422, body)

	require.Len(t, ve.Fields, 2)
	require.Equal(t, "email", ve.Fields[0].Field)
	require.Equal(t, "password", ve.Fields[1].Field)
	require.Contains(t, ve.Error(), "email: value is not a valid email address")
	require.Contains(t, ve.Error(), "password: ensure this value has at least 6 characters")
}

func TestDecodeValidationError_PreservesFieldOrder(t *testing.T) {
	body := []byte(`{"detail": [
		{"loc": ["body", "b"], "msg": "m1"},
		{"loc": ["body", "a"], "msg": "m2"}
	]}`)
	ve := decodeValidationError(422, body)

	require.Equal(t, "b", ve.Fields[0].Field)
	require.Equal(t, "a", ve.Fields[1].Field)
}

func TestDecodeValidationError_GarbageBody(t *testing.T) {
	ve := decodeValidationError(400, []byte("<html>nope</html>"))

	require.Equal(t, 400, ve.StatusCode)
	require.Empty(t, ve.Message)
	require.Equal(t, "request failed with status 400", ve.Error())
}

func TestFieldName(t *testing.T) {
	require.Equal(t, "email", fieldName([]any{"body", "email"}))
	require.Equal(t, "priority", fieldName([]any{"query", "priority"}))
	// Numeric index inside a list payload.
	require.Equal(t, "title", fieldName([]any{"body", float64(0), "title"}))
	require.Equal(t, "", fieldName([]any{"body"}))
	require.Equal(t, "", fieldName(nil))
}
