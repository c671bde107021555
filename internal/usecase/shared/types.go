package shared

// Outbox job identifiers consumed by the external notification worker.
const (
	NotificationKindOfferEmail = "offer_email"
	NotificationTopicOffers    = "offers"
)
