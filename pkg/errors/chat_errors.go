package errors

var (
	// Domain errors — used in usecase/repository
	ErrUnauthorized        = Unauthorized("missing or invalid identity")
	ErrChannelNotFound     = NotFound("channel not found")
	ErrConversationUnknown = NotFound("conversation does not exist")
	ErrInvalidParticipants = InvalidArg("a direct conversation needs two distinct participants")
	ErrEmptyBody           = InvalidArg("message body cannot be empty")
)

func ErrStorageUnavailable(cause error) error {
	return Wrap(CodeUnavailable, "message storage unavailable", cause)
}
