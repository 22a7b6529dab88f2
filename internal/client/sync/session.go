package sync

// Session identifies the user a coordinator call acts for and carries
// the bearer token attached to every remote request. It is threaded
// explicitly through each call, so separate sessions never collide.
type Session struct {
	Token       string
	UserID      string
	Username    string
	DisplayName string
}
