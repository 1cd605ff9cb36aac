package realtime

type Event string

const (
	EventInventoryCheckCompleted Event = "InventoryCheckCompleted"
	EventShortageResolved        Event = "ShortageResolved"
	EventNotificationCreated     Event = "NotificationCreated"
	EventChatMessagePosted       Event = "ChatMessagePosted"
	EventStockUpdated            Event = "StockUpdated"
)

// Named channels. Entity-scoped events use the entity id as the channel
// instead (schedule id for check runs, check id for resolutions).
const (
	ChannelStock = "stock"
)

// Message is one realtime payload addressed to a channel. Channels are either
// a user id (personal notifications) or a named room (chat, production floor).
type Message struct {
	Channel string `json:"channel"`
	Event   Event  `json:"event"`
	Data    any    `json:"data,omitempty"`
}
