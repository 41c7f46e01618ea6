package models

// AccountCredential is a username/password pair used solely to validate
// local sign-in. The username is the unique key; a repeat sign-up with the
// same username replaces the stored pair. Credentials are stored in
// plaintext: the account ledger only gates the local profile editor, it is
// not a security boundary.
type AccountCredential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
