package models

// User is a local account. Password holds whatever the configured hasher
// produced; with the default hasher that is the password as typed.
type User struct {
	ID           string `json:"id"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
	CreatedAt    string `json:"createdAt"`
}
