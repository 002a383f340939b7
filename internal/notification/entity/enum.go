package entity

// Channel is the medium a delivery attempt went through. Values are
// persisted as SMALLINT in notification_delivery_logs.channel.
type Channel int16

const (
	ChannelUnknown Channel = iota
	ChannelInApp
	ChannelEmail
)

var channelNames = [...]string{
	ChannelUnknown: "unknown",
	ChannelInApp:   "in_app",
	ChannelEmail:   "email",
}

func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return channelNames[ChannelUnknown]
	}
	return channelNames[c]
}

// DeliveryStatus tracks one delivery log row: queued, then sent or failed.
type DeliveryStatus int16

const (
	DeliveryStatusUnknown DeliveryStatus = iota
	DeliveryStatusQueued
	DeliveryStatusSent
	DeliveryStatusFailed
)

var deliveryStatusNames = [...]string{
	DeliveryStatusUnknown: "unknown",
	DeliveryStatusQueued:  "queued",
	DeliveryStatusSent:    "sent",
	DeliveryStatusFailed:  "failed",
}

func (s DeliveryStatus) String() string {
	if s < 0 || int(s) >= len(deliveryStatusNames) {
		return deliveryStatusNames[DeliveryStatusUnknown]
	}
	return deliveryStatusNames[s]
}

// Final reports whether no further attempt is expected for the row.
func (s DeliveryStatus) Final() bool {
	return s == DeliveryStatusSent || s == DeliveryStatusFailed
}

// NotificationStatus filters the in-app feed by read state.
type NotificationStatus string

const (
	NotificationStatusAll    NotificationStatus = "all"
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
)

// ParseNotificationStatus maps a query value to a filter; blank or unknown
// input selects the whole feed.
func ParseNotificationStatus(raw string) NotificationStatus {
	switch s := NotificationStatus(raw); s {
	case NotificationStatusUnread, NotificationStatusRead:
		return s
	default:
		return NotificationStatusAll
	}
}

// TriggerKey names the event a notification was raised for and selects the
// template it is rendered with.
type TriggerKey string

const (
	TriggerKeyUserActivation  TriggerKey = "user_activation"
	TriggerKeyMessageReceived TriggerKey = "message_received"
)

func (tk TriggerKey) String() string { return string(tk) }
