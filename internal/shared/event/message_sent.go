package event

const MessageSentDestination string = "mailbox.message_sent"
const MessageSentConsumerNotification string = "mailbox.message_sent.notification"

// MessageSentMessage is published once per sent message, after commit.
type MessageSentMessage struct {
	MessageID    int64   `json:"message_id"`
	SenderID     int64   `json:"sender_id"`
	SenderName   string  `json:"sender_name"`
	Subject      string  `json:"subject"`
	RecipientIDs []int64 `json:"recipient_ids"`
	SentAt       int64   `json:"sent_at"`
}
