package request

type Subscribe struct {
	Email string `json:"email" validate:"required"`
}

type Unsubscribe struct {
	SubscriptionARN string `json:"subscription_arn" validate:"required"`
}
