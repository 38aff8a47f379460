package entities

// User is a local account. Username uniqueness is not enforced by the
// schema; account creation checks for an existing username first and
// aborts on a match. The password column holds whatever the configured
// credential scheme produced (plaintext by default).
type User struct {
	UserID   uint   `gorm:"primaryKey" json:"user_id"`
	Username string `gorm:"index;size:100" json:"username"`
	Password string `gorm:"size:100" json:"-"`
}
