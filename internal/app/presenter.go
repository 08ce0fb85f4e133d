package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/five82/shopwatch/internal/state"
)

// Presenter receives the outcome of every poll cycle. Present gets the full,
// ordered snapshot list of a successful cycle and replaces whatever was shown
// before; PollFailed gets the error of a cycle that fetched nothing.
type Presenter interface {
	Present(shops []state.ShopSnapshot)
	PollFailed(err error)
}

var _ Presenter = (*state.Board)(nil)

// logPresenter prints each delivered cycle, for headless runs.
type logPresenter struct {
	logger zerolog.Logger
}

func (p logPresenter) Present(shops []state.ShopSnapshot) {
	for _, shop := range shops {
		arr := zerolog.Arr()
		for _, it := range shop.Items {
			arr.Str(formatItem(it))
		}
		p.logger.Info().
			Str("shop", shop.DisplayName).
			Str("countdown", shop.Countdown).
			Array("items", arr).
			Msg("shop")
	}
}

func (p logPresenter) PollFailed(err error) {
	p.logger.Error().Err(err).Msg("stock unavailable, keeping last known shops")
}

func formatItem(it state.Item) string {
	if it.Emoji == "" {
		return fmt.Sprintf("%s x%d", it.Name, it.Quantity)
	}
	return fmt.Sprintf("%s %s x%d", it.Emoji, it.Name, it.Quantity)
}
