package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketOf(t *testing.T) {
	tests := []struct {
		severity string
		want     Bucket
	}{
		{"critical", BucketCritical},
		{"HIGH", BucketHigh},
		{"Medium", BucketMedium},
		{"moderate", BucketMedium},
		{"low", BucketLow},
		{"error", BucketUndefined},
		{"", BucketUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketOf(tt.severity))
		})
	}
}

func TestDecorate(t *testing.T) {
	assert.Equal(t, "high", Decorate("high", DecorationNone))
	assert.Equal(t, "🟠 high", Decorate("high", DecorationEmoji))
	assert.Equal(t, "🟡 Moderate", Decorate("Moderate", DecorationEmoji))
	assert.Equal(t, "⚪ ", Decorate("", DecorationEmoji))
	assert.Equal(t, "![critical](https://img.shields.io/badge/-critical-red) critical", Decorate("critical", DecorationColor))
	assert.Equal(t, "🔵 ![low](https://img.shields.io/badge/-low-blue) LOW", Decorate("LOW", DecorationBoth))
	assert.Equal(t, "![undefined](https://img.shields.io/badge/-undefined-lightgrey) note", Decorate("note", DecorationColor))
}

func TestParseDecoration(t *testing.T) {
	d, err := ParseDecoration("Both")
	require.NoError(t, err)
	assert.Equal(t, DecorationBoth, d)

	_, err = ParseDecoration("sparkles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none, emoji, color, both")
}
