package domain

// Account is owned by the remote directory; it is fetched or created there
// and passed through, never persisted locally.
type Account struct {
	AccountID   string `json:"id"`
	DisplayName string `json:"name"`
	Email       string `json:"email"`
	Registered  bool   `json:"registered"`
}
