package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsObjectID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"short key", "priority", false},
		{"short key, page", "page", false},
		{"long lowercase hex-like id", "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi", true},
		{"20-char boundary", "abcdefghij0123456789", true},
		{"19 chars is too short", "abcdefghij012345678", false},
		{"uppercase disqualifies", "ABCDEFGHIJ0123456789", false},
		{"spaces disqualify", "not a valid object id ", false},
		{"underscores and dashes allowed", "object_id-with-hyphen-1234", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsObjectID(tc.in))
		})
	}
}
