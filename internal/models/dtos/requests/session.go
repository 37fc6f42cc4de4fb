package requests

// CreateSessionRequest exchanges an auth-provider identity token for a
// platform session.
type CreateSessionRequest struct {
	IdentityToken string `json:"identity_token"`
}
