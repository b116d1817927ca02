package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutrivision/nutrition-service/internal/domain/model"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected float64
	}{
		{"integer", "2", 2},
		{"decimal", "1.5", 1.5},
		{"fraction", "1/2", 0.5},
		{"fraction three quarters", "3/4", 0.75},
		{"word number", "two", 2},
		{"word half", "half", 0.5},
		{"word quarter", "quarter", 0.25},
		{"article a", "a", 1},
		{"article an", "an", 1},
		{"teens", "fifteen", 15},
		{"tens", "forty", 40},
		{"compound hyphenated", "twenty-five", 25},
		{"dozen", "dozen", 12},
		{"unparseable falls back to one", "several", 1},
		{"empty falls back to one", "", 1},
		{"zero denominator falls back to one", "1/0", 1},
		{"mixed case", "Three", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseNumber(tt.token), 1e-9)
		})
	}
}

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"grams plural", "grams", model.UnitGram},
		{"gram singular", "gram", model.UnitGram},
		{"short g", "g", model.UnitGram},
		{"kilograms", "kilograms", model.UnitKilogram},
		{"slices", "slices", model.UnitSlice},
		{"cups", "Cups", model.UnitCup},
		{"tablespoons", "tablespoons", model.UnitTbsp},
		{"teaspoon", "teaspoon", model.UnitTsp},
		{"ounces", "ounces", model.UnitOunce},
		{"pounds", "lbs", model.UnitPound},
		{"portion maps to serving", "portion", model.UnitServing},
		{"unknown passes through lowered", "Pinches", "pinches"},
		{"whitespace trimmed", " ml ", model.UnitMillilitre},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeUnit(tt.token))
		})
	}
}

func TestUnitGrams(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		expected float64
	}{
		{"gram identity", "g", 1},
		{"kilogram", "kg", 1000},
		{"ounce", "oz", 28.35},
		{"pound", "lb", 453.59},
		{"cup", "cup", 240},
		{"slice", "slice", 25},
		{"piece", "piece", 100},
		{"serving", "serving", 100},
		{"glass", "glass", 240},
		{"alias resolves first", "slices", 25},
		{"unknown unit is a 1:1 factor", "pinch", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, UnitGrams(tt.unit), 1e-9)
		})
	}
}

func TestIsNumberToken(t *testing.T) {
	assert.True(t, IsNumberToken("2"))
	assert.True(t, IsNumberToken("1/2"))
	assert.True(t, IsNumberToken("two"))
	assert.True(t, IsNumberToken("twenty-five"))
	assert.True(t, IsNumberToken("a"))
	assert.False(t, IsNumberToken("green"))
	assert.False(t, IsNumberToken(""))
}

func TestIsUnitToken(t *testing.T) {
	assert.True(t, IsUnitToken("grams"))
	assert.True(t, IsUnitToken("slice"))
	assert.False(t, IsUnitToken("pinch"))
	assert.False(t, IsUnitToken("apple"))
}
