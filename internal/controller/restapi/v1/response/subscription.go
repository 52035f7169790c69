package response

type Subscribe struct {
	Success         bool   `json:"success" example:"true"`
	Message         string `json:"message" example:"Subscription request sent. Check your email to confirm."`
	SubscriptionARN string `json:"subscription_arn" example:"arn:aws:sns:us-east-1:123456789012:image-uploads:3f1c..."`
}
