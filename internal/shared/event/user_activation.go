package event

const UserActivationDestination string = "identity.user_activation"
const UserActivationConsumerNotification string = "identity.user_activation.notification"

type UserActivationMessage struct {
	UserID         int64  `json:"user_id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	ChallengeToken string `json:"challenge_token"`
}
