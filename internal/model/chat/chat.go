package chat

// Turn is one message in the conversation. The browser owns the full
// history and resends it with every request.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Request is the body of POST /chat.
type Request struct {
	Message string `json:"message"`
	History []Turn `json:"history"`
}

// Source is one citation attached to a grounded answer.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Reply is the successful response of POST /chat.
type Reply struct {
	Response string   `json:"response"`
	Sources  []Source `json:"sources"`
}
