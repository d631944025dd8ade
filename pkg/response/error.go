package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	UserNotFound                = "Cannot find user"
	QuizzesNotFound             = "Quizzes not found"
	ConfigsDbNotFound           = "Configs from database not found"
	RecommendationsNotAvailable = "No recommendations available"
	RecommendationsAreDisabled  = "Recommendations are disabled"
	//----------------------
	InvalidToken     = "Invalid/Stale Token"
	TokenNotProvided = "Unauthorized, accessToken not provided"
	AdminOnly        = "Forbidden, Admin users only"
	NotYourAccount   = "Forbidden, token does not belong to this user"
	//----------------------
	UserPassNotMatch = "Email and password do not match"
	//----------------------
	BadRequestBody   = "Incorrect request body"
	InvalidUserId    = "Invalid userId"
	InvalidQuizId    = "Invalid quizId"
	InvalidTopFive   = "Between 1 and 5 comma-separated movie names are required"
	InvalidResponses = "At least one quiz response is required"
	InvalidEmail     = "Invalid email address"
	WeakPassword     = "Password must be at least 8 characters, including 1 uppercase, 1 lowercase, 1 digit and 1 special character"
	//----------------------
	EmailAlreadyExist = "This email already exists"
	//----------------------
)
