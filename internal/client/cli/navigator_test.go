package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteNavigator_PrintsAndRemembersRoute(t *testing.T) {
	var out bytes.Buffer
	nav := newRouteNavigator(&out)

	assert.Empty(t, nav.Current())

	nav.NavigateTo("/dashboard")
	assert.Equal(t, "/dashboard", nav.Current())
	assert.Contains(t, out.String(), "-> /dashboard")

	nav.NavigateTo("/login")
	assert.Equal(t, "/login", nav.Current())
}
