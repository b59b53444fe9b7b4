package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		path          string
		want          Decision
	}{
		{"anonymous root", false, RootPath, RedirectLogin},
		{"authenticated root", true, RootPath, RedirectDashboard},
		{"anonymous login", false, LoginPath, RenderPublic},
		{"authenticated login", true, LoginPath, RedirectDashboard},
		{"anonymous dashboard", false, DashboardPath, RedirectLogin},
		{"authenticated dashboard", true, DashboardPath, RenderProtected},
		{"anonymous deep page", false, "/patients", RedirectLogin},
		{"authenticated deep page", true, "/patients", RenderProtected},
		{"anonymous unknown page", false, "/no-such-page", RedirectLogin},
		{"authenticated unknown page", true, "/no-such-page", RenderProtected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.authenticated, tt.path))
		})
	}
}

func TestDecideIsPure(t *testing.T) {
	// Same inputs, same verdict, every time.
	for i := 0; i < 3; i++ {
		assert.Equal(t, RenderProtected, Decide(true, "/invoices"))
		assert.Equal(t, RedirectLogin, Decide(false, "/invoices"))
	}
}
