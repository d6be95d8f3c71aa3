package rest

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apiDomain "github.com/tharun634/JavaBot/api/domain"
	"github.com/tharun634/JavaBot/pkg/utils"
)

type API struct {
	ProfileService     apiDomain.IProfileUsecase
	LeaderboardService apiDomain.ILeaderboardUsecase
}

func InitRestAPI(app fiber.Router, profile apiDomain.IProfileUsecase, leaderboard apiDomain.ILeaderboardUsecase) API {
	rest := API{ProfileService: profile, LeaderboardService: leaderboard}
	app.Get("/guilds/:guild_id/users/:user_id", rest.GetUserProfile)
	app.Get("/guilds/:guild_id/leaderboard/experience", rest.GetExperienceLeaderboard)
	app.Get("/guilds/:guild_id/leaderboard/qotw", rest.GetQOTWLeaderboard)

	return rest
}

func (handler *API) GetUserProfile(c *fiber.Ctx) error {
	guildID, ok := parseSnowflake(c, "guild_id")
	if !ok {
		return badRequest(c, "guild_id must be a numeric id")
	}
	userID, ok := parseSnowflake(c, "user_id")
	if !ok {
		return badRequest(c, "user_id must be a numeric id")
	}

	data, err := handler.ProfileService.GetUserProfile(c.UserContext(), guildID, userID)
	utils.PanicIfNeeded(err)

	return c.JSON(data)
}

func (handler *API) GetExperienceLeaderboard(c *fiber.Ctx) error {
	guildID, ok := parseSnowflake(c, "guild_id")
	if !ok {
		return badRequest(c, "guild_id must be a numeric id")
	}
	page, ok := parsePage(c)
	if !ok {
		return badRequest(c, "page must be a positive integer")
	}

	entries, err := handler.LeaderboardService.GetExperienceLeaderboard(c.UserContext(), guildID, page)
	utils.PanicIfNeeded(err)

	return c.JSON(entries)
}

func (handler *API) GetQOTWLeaderboard(c *fiber.Ctx) error {
	guildID, ok := parseSnowflake(c, "guild_id")
	if !ok {
		return badRequest(c, "guild_id must be a numeric id")
	}
	page, ok := parsePage(c)
	if !ok {
		return badRequest(c, "page must be a positive integer")
	}

	entries, err := handler.LeaderboardService.GetQOTWLeaderboard(c.UserContext(), guildID, page)
	utils.PanicIfNeeded(err)

	return c.JSON(entries)
}

func parseSnowflake(c *fiber.Ctx, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parsePage reads the page query parameter, defaulting to 1 when absent.
// Page range validation happens in the usecase; this only rejects values
// that are not integers at all.
func parsePage(c *fiber.Ctx) (int, bool) {
	raw := c.Query("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return page, true
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(utils.ResponseData{
		Status:  400,
		Code:    "VALIDATION_ERROR",
		Message: message,
	})
}
