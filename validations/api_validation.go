package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	apiDomain "github.com/tharun634/JavaBot/api/domain"
	pkgError "github.com/tharun634/JavaBot/pkg/error"
)

func ValidateLeaderboardRequest(ctx context.Context, request apiDomain.LeaderboardRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.GuildID, validation.Required),
		validation.Field(&request.Page, validation.Required, validation.Min(1)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
