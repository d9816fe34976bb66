package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnlyJSON(t *testing.T) {
	d := NewDateOnly(time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-14"`, string(raw))

	var back DateOnly
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, "2025-03-14", back.String())

	var empty DateOnly
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())

	raw, err = json.Marshal(DateOnly{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	assert.Error(t, json.Unmarshal([]byte(`"14/03/2025"`), &back))
}

func TestTemplateValid(t *testing.T) {
	assert.True(t, TemplateModern.Valid())
	assert.True(t, TemplateClassic.Valid())
	assert.True(t, TemplateMinimal.Valid())
	assert.False(t, Template("holographic").Valid())
	assert.False(t, Template("").Valid())
}

func TestCloneIsolatesItems(t *testing.T) {
	inv := Invoice{
		ID:    DraftID,
		Items: []InvoiceItem{{ID: "a", Quantity: 1, Rate: 10, Total: 10}},
	}

	clone := inv.Clone()
	clone.Items[0].Rate = 99

	assert.Equal(t, 10.0, inv.Items[0].Rate)
	assert.True(t, inv.IsDraft())
}
