package constants

// Key c.Locals yang diisi middleware auth dan request-id.
const (
	LocalsUserID    = "user_id"
	LocalsUserEmail = "user_email"
	LocalsUserName  = "user_name"
	LocalsToken     = "access_token"
	LocalsRequestID = "reqid"
)
