package cli

import (
	"fmt"
	"io"
	"sync"
)

// routeNavigator is the CLI's stand-in for the web client's router: route
// changes are printed and remembered, never blocked on.
type routeNavigator struct {
	mu      sync.Mutex
	w       io.Writer
	current string
}

func newRouteNavigator(w io.Writer) *routeNavigator {
	return &routeNavigator{w: w}
}

func (n *routeNavigator) NavigateTo(path string) {
	n.mu.Lock()
	n.current = path
	n.mu.Unlock()
	fmt.Fprintf(n.w, "-> %s\n", path)
}

func (n *routeNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
