package notification

// Toast is one collected notification.
type Toast struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

// Collector records notifications so a handler can return them with the
// response instead of (or as well as) logging them. Not safe for use
// across goroutines; create one per request.
type Collector struct {
	Toasts []Toast
}

func (c *Collector) Success(title, message string) {
	c.Toasts = append(c.Toasts, Toast{Title: title, Message: message, Icon: "success"})
}

func (c *Collector) Error(title, message string) {
	c.Toasts = append(c.Toasts, Toast{Title: title, Message: message, Icon: "error"})
}
