package render

import (
	"fmt"
	"strings"
)

// Bucket is the decoration class a severity string falls into.
type Bucket string

const (
	BucketCritical  Bucket = "critical"
	BucketHigh      Bucket = "high"
	BucketMedium    Bucket = "medium"
	BucketLow       Bucket = "low"
	BucketUndefined Bucket = "undefined"
)

// BucketOf maps a severity to its bucket, case-insensitively.
// "moderate" shares the medium bucket; anything unrecognized is undefined.
func BucketOf(severity string) Bucket {
	switch strings.ToLower(severity) {
	case "critical":
		return BucketCritical
	case "high":
		return BucketHigh
	case "medium", "moderate":
		return BucketMedium
	case "low":
		return BucketLow
	default:
		return BucketUndefined
	}
}

// rank orders buckets from most to least severe.
func (b Bucket) rank() int {
	switch b {
	case BucketCritical:
		return 0
	case BucketHigh:
		return 1
	case BucketMedium:
		return 2
	case BucketLow:
		return 3
	default:
		return 4
	}
}

// Decoration selects how a severity cell is decorated in Markdown.
type Decoration string

const (
	DecorationNone  Decoration = "none"
	DecorationEmoji Decoration = "emoji"
	DecorationColor Decoration = "color"
	DecorationBoth  Decoration = "both"
)

// Decorations lists the accepted decoration names.
func Decorations() []string {
	return []string{string(DecorationNone), string(DecorationEmoji), string(DecorationColor), string(DecorationBoth)}
}

// ParseDecoration validates a decoration name.
func ParseDecoration(s string) (Decoration, error) {
	switch d := Decoration(strings.ToLower(s)); d {
	case DecorationNone, DecorationEmoji, DecorationColor, DecorationBoth:
		return d, nil
	}
	return "", fmt.Errorf("unknown decoration %q (want one of %s)", s, strings.Join(Decorations(), ", "))
}

var severityEmoji = map[Bucket]string{
	BucketCritical:  "🔴",
	BucketHigh:      "🟠",
	BucketMedium:    "🟡",
	BucketLow:       "🔵",
	BucketUndefined: "⚪",
}

var severityBadgeColor = map[Bucket]string{
	BucketCritical:  "red",
	BucketHigh:      "orange",
	BucketMedium:    "yellow",
	BucketLow:       "blue",
	BucketUndefined: "lightgrey",
}

// badge returns a shields.io image for the bucket. Bucket names contain no
// characters shields treats specially, so no escaping is needed.
func badge(b Bucket) string {
	return fmt.Sprintf("![%s](https://img.shields.io/badge/-%s-%s)", b, b, severityBadgeColor[b])
}

// Decorate prefixes the severity text with the decoration for its bucket.
// The severity text itself is returned unchanged after the prefix.
func Decorate(severity string, d Decoration) string {
	b := BucketOf(severity)
	switch d {
	case DecorationEmoji:
		return severityEmoji[b] + " " + severity
	case DecorationColor:
		return badge(b) + " " + severity
	case DecorationBoth:
		return severityEmoji[b] + " " + badge(b) + " " + severity
	default:
		return severity
	}
}
