package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{
			name:  "plain email",
			email: "user@example.com",
			want:  "https://www.gravatar.com/avatar/b58996c504c5638798eb6b511e6f49af?s=250&r=x&d=retro",
		},
		{
			name:  "uppercase email is normalized",
			email: "MIXED@Example.COM",
			want:  "https://www.gravatar.com/avatar/bbb73b6b3e098449cb555418ee356313?s=250&r=x&d=retro",
		},
		{
			name:  "surrounding whitespace is trimmed",
			email: "  user@example.com  ",
			want:  "https://www.gravatar.com/avatar/b58996c504c5638798eb6b511e6f49af?s=250&r=x&d=retro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URL(tt.email))
		})
	}
}

func TestURL_SameEmailSameURL(t *testing.T) {
	first := URL("stable@example.com")
	second := URL("Stable@Example.com ")
	assert.Equal(t, first, second)
}
