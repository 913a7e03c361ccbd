// Package nav implements a stack-based screen router for the terminal client.
//
// The controller only tracks where the user is; rendering is the caller's
// concern. Screens transition by pushing, replacing, or resetting routes, and
// the application loop asks for the current route after every screen returns.
package nav

// Params carries screen arguments across a transition, e.g. the email address
// handed from the forgot-password screen to the reset-password screen.
type Params map[string]string

// Route is one entry in the navigation stack.
type Route struct {
	Name   string
	Params Params
}

// Controller is a stack of routes. It is mutated only from the client's
// interactive goroutine, so it carries no locking.
type Controller struct {
	stack []Route
}

func NewController() *Controller {
	return &Controller{}
}

// Push places a new route on top of the stack.
func (c *Controller) Push(name string, params Params) {
	c.stack = append(c.stack, Route{Name: name, Params: params})
}

// Replace swaps the top route for a new one. The replaced route is not
// reachable via GoBack afterwards. On an empty stack it behaves like Push.
func (c *Controller) Replace(name string, params Params) {
	if len(c.stack) == 0 {
		c.Push(name, params)
		return
	}
	c.stack[len(c.stack)-1] = Route{Name: name, Params: params}
}

// GoBack pops the top route. Popping the last route leaves an empty stack;
// the application loop treats that as exit.
func (c *Controller) GoBack() {
	if len(c.stack) == 0 {
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// Reset discards all history and leaves a single route on the stack.
func (c *Controller) Reset(name string) {
	c.stack = []Route{{Name: name}}
}

// Current returns the top route, or ok=false when the stack is empty.
func (c *Controller) Current() (Route, bool) {
	if len(c.stack) == 0 {
		return Route{}, false
	}
	return c.stack[len(c.stack)-1], true
}

// Depth reports the number of routes on the stack.
func (c *Controller) Depth() int {
	return len(c.stack)
}
