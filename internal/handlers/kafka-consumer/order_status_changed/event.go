package order_status_changed

// statusChangedEvent публикуют кухня и доставка в KAFKA_STATUS_TOPIC.
type statusChangedEvent struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"order_status"`
}
