package structs

import "go.mongodb.org/mongo-driver/bson/primitive"

type WebhookStatus string

const (
	Enabled  WebhookStatus = "enabled"
	Disabled WebhookStatus = "disabled"
)

func (s WebhookStatus) ToString() string {
	return string(s)
}

// Settings is one runtime profile for the webhook intake and the analytics
// job, editable without a redeploy.
type Settings struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Status    string             `bson:"status"`
	Notify    bool               `bson:"notify"`
	SMAWindow int                `bson:"sma_window"`
}
