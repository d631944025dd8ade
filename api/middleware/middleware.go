package middleware

import (
	services "movie_recommender/internal/service"
	"movie_recommender/model"
	"movie_recommender/pkg/response"
	"movie_recommender/util"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	accessTokenLocal = "accessToken"
	jwtUserDataLocal = "jwtUserData"
)

func AuthMiddleware(c *fiber.Ctx) error {
	accessToken := c.Get(fiber.HeaderAuthorization, "")
	strArr := strings.Fields(accessToken)
	if len(strArr) == 2 && strings.EqualFold(strArr[0], "bearer") {
		accessToken = strArr[1]
	} else {
		accessToken = ""
	}
	if accessToken == "" {
		return response.ResponseError(c, response.TokenNotProvided, fiber.StatusUnauthorized)
	}

	if services.IsTokenBlacklisted(c.UserContext(), accessToken) {
		return response.ResponseError(c, "Unauthorized, accessToken is in blacklist", fiber.StatusUnauthorized)
	}

	token, claims, err := util.VerifyToken(accessToken)
	if err != nil || token == nil || claims == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	c.Locals(accessTokenLocal, accessToken)
	c.Locals(jwtUserDataLocal, claims)
	return c.Next()
}

// SelfMiddleware lets a request through only when the :userId path param is the caller.
// It must run after AuthMiddleware.
func SelfMiddleware(c *fiber.Ctx) error {
	claims := GetJwtUserData(c)
	if claims == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	userId, err := c.ParamsInt("userId", 0)
	if err != nil || userId <= 0 {
		return response.ResponseError(c, response.InvalidUserId, fiber.StatusBadRequest)
	}
	if int64(userId) != claims.UserId {
		return response.ResponseError(c, response.NotYourAccount, fiber.StatusForbidden)
	}

	return c.Next()
}

func AdminMiddleware(c *fiber.Ctx) error {
	claims := GetJwtUserData(c)
	if claims == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}
	if claims.Role != model.AdminRole {
		return response.ResponseError(c, response.AdminOnly, fiber.StatusForbidden)
	}
	return c.Next()
}

//------------------------------------------
//------------------------------------------

func GetJwtUserData(c *fiber.Ctx) *util.MyJwtClaims {
	claims, _ := c.Locals(jwtUserDataLocal).(*util.MyJwtClaims)
	return claims
}

func GetAccessToken(c *fiber.Ctx) string {
	accessToken, _ := c.Locals(accessTokenLocal).(string)
	return accessToken
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
