package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchDoc struct {
	Name  Optional[string]  `json:"name"`
	Price Optional[float64] `json:"price"`
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantName  Optional[string]
		wantPrice Optional[float64]
	}{
		{
			name:      "absent keys",
			body:      `{}`,
			wantName:  Optional[string]{},
			wantPrice: Optional[float64]{},
		},
		{
			name:      "explicit null",
			body:      `{"name": null}`,
			wantName:  Optional[string]{Set: true, Null: true},
			wantPrice: Optional[float64]{},
		},
		{
			name:      "zero price is present",
			body:      `{"price": 0}`,
			wantName:  Optional[string]{},
			wantPrice: Optional[float64]{Set: true, Value: 0},
		},
		{
			name:      "empty string is present",
			body:      `{"name": "", "price": 12.5}`,
			wantName:  Optional[string]{Set: true, Value: ""},
			wantPrice: Optional[float64]{Set: true, Value: 12.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var doc patchDoc
			require.NoError(t, json.Unmarshal([]byte(tt.body), &doc))
			assert.Equal(t, tt.wantName, doc.Name)
			assert.Equal(t, tt.wantPrice, doc.Price)
		})
	}
}

func TestOptional_UnmarshalJSON_TypeMismatch(t *testing.T) {
	t.Parallel()

	var doc patchDoc
	err := json.Unmarshal([]byte(`{"price": "ten"}`), &doc)
	assert.Error(t, err)
}

func TestOptional_Present(t *testing.T) {
	t.Parallel()

	assert.True(t, Some("x").Present())
	assert.False(t, Null[string]().Present())
	assert.False(t, Optional[string]{}.Present())
}
