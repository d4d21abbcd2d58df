package response

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData(t *testing.T) {
	resp := Data(map[string]string{"id": "abc"})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":"abc"}}`, string(raw))
}

func TestDataWithMessage(t *testing.T) {
	resp := DataWithMessage(nil, "Subscription paused")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":null,"message":"Subscription paused"}`, string(raw))
}

func TestError(t *testing.T) {
	resp := Error("Unauthorized")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, string(raw))
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Name   string `validate:"required"`
		Email  string `validate:"required,email"`
		Rating int    `validate:"min=1,max=5"`
	}

	v := validator.New()
	err := v.Struct(payload{Email: "not-an-email", Rating: 9})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	resp := ValidationError(verrs)
	msgs, ok := resp.Error.([]string)
	require.True(t, ok)
	assert.Contains(t, msgs, "field Name is a required field")
	assert.Contains(t, msgs, "field Email must be a valid email")
	assert.Contains(t, msgs, "field Rating is above the maximum allowed")
}
