package domain

// Item is one scheduled review of a topic. Items are created in batches by
// the scheduler and never change afterwards.
type Item struct {
	Topic string `json:"topic" yaml:"topic"`
	Date  Date   `json:"date" yaml:"date"`
}

// NewItem builds an Item from raw text, rejecting malformed dates.
// The topic is taken verbatim, including the empty string.
func NewItem(topic, date string) (Item, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Item{}, err
	}
	return Item{Topic: topic, Date: d}, nil
}

// StoredItem is an Item as persisted for a user.
type StoredItem struct {
	Item
	ID      string
	UserID  string
	BatchID string
}
