package types

type AskRequest struct {
	Message string `json:"message"`
}

type AskResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// WebhookEvent is the inbound chat-platform payload. Only the fields the
// assistant acts on are decoded; everything else is ignored.
type WebhookEvent struct {
	Data WebhookData `json:"data"`
}

type WebhookData struct {
	Message      string        `json:"message"`
	Sender       WebhookSender `json:"sender"`
	Receiver     string        `json:"receiver"`
	ReceiverType string        `json:"receiverType"`
}

type WebhookSender struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}
