package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecognizer(t *testing.T) {
	entities, err := NoopRecognizer{}.Recognize(context.Background(), "2 eggs and toast")
	require.NoError(t, err)
	assert.Nil(t, entities)
}

func TestHTTPRecognizer_Recognize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recognize", r.URL.Path)

		var req recognizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2 eggs and toast", req.Text)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(recognizeResponse{
			Entities: []Entity{
				{Text: "eggs", Label: "FOOD"},
				{Text: "toast", Label: "FOOD"},
			},
		})
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(srv.URL, 2*time.Second)
	entities, err := rec.Recognize(context.Background(), "2 eggs and toast")
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "eggs", entities[0].Text)
	assert.Equal(t, EntityLabelFood, entities[0].Label)
}

func TestHTTPRecognizer_Recognize_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(srv.URL, 2*time.Second)
	_, err := rec.Recognize(context.Background(), "2 eggs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

type stubRecognizer struct {
	entities []Entity
	err      error
}

func (s stubRecognizer) Recognize(context.Context, string) ([]Entity, error) {
	return s.entities, s.err
}

func TestFoodNames(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		rec  EntityRecognizer
		want []string
	}{
		{
			name: "nil recognizer returns nothing",
			rec:  nil,
			want: nil,
		},
		{
			name: "recognizer error degrades to rule-only",
			rec:  stubRecognizer{err: errors.New("connection refused")},
			want: nil,
		},
		{
			name: "filters non-food labels",
			rec: stubRecognizer{entities: []Entity{
				{Text: "breakfast", Label: "MEAL"},
				{Text: "eggs", Label: "FOOD"},
			}},
			want: []string{"eggs"},
		},
		{
			name: "normalizes and dedupes",
			rec: stubRecognizer{entities: []Entity{
				{Text: "  Eggs ", Label: "food"},
				{Text: "eggs", Label: "FOOD"},
				{Text: "toast", Label: "FOOD"},
				{Text: "", Label: "FOOD"},
			}},
			want: []string{"eggs", "toast"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FoodNames(ctx, tt.rec, "whatever")
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
