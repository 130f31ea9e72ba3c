package httpx

var (
	MsgErrGeneric     = "Internal server error"
	MsgErrNotFound    = "Not found"
	MsgErrBadRequest  = "Invalid request"
	MsgErrRequired    = "Value is required"
	MsgErrTooShort    = "Value must be at least %s characters"
	MsgErrTooLong     = "Value must be less than %s characters"
	MsgErrTooSmall    = "Value must be at least %s"
	MsgErrTooLarge    = "Value must be at most %s"
	MsgErrInvalid     = "Invalid value"
	MsgErrUnavailable = "The movie database is unavailable right now"

	MsgNoResults      = "There are no movies that matched your query."
	MsgNoCast         = "We don't have any cast added to this movie."
	MsgNoKeywords     = "No keywords has been added."
	MsgNoVideos       = "No videos has been added."
	MsgNoCarouselItem = "Nothing to show right now."
)
