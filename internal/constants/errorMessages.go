package constants

const (
	MsgUnauthorized       = "Unauthorized: missing claims"
	MsgInvalidRequestBody = "Invalid request body"
	MsgInternalError      = "Internal server error"
	MsgAircraftNotFound   = "aircraft not found"
	MsgPilotNotFound      = "pilot not found"
	MsgTripNotFound       = "trip not found"
	MsgTripNotDeletable   = "only scheduled trips can be deleted"
	MsgPlaneInUse         = "plane is referenced by trips; reassign or delete them first"
	MsgPilotInUse         = "pilot is referenced by trips; reassign or delete them first"
	MsgTailNumberTaken    = "tail number already registered"
	MsgInvalidCredentials = "invalid email or password"
	MsgAccountExists      = "an account with this email already exists"
)
