package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GameInfo describes the game played in a session.
type GameInfo struct {
	GameType   string          `json:"gameType"`
	SmallBlind decimal.Decimal `json:"smallBlind"`
	BigBlind   decimal.Decimal `json:"bigBlind"`
	Straddle   decimal.Decimal `json:"straddle"`
	Ante       decimal.Decimal `json:"ante"`
	TableSize  int             `json:"tableSize"`
}

// GameInfoPatch carries optional changes to GameInfo.
type GameInfoPatch struct {
	GameType   *string
	SmallBlind *decimal.Decimal
	BigBlind   *decimal.Decimal
	Straddle   *decimal.Decimal
	Ante       *decimal.Decimal
	TableSize  *int
}

// ApplyTo validates the patch and copies the set fields onto g.
func (p GameInfoPatch) ApplyTo(g *GameInfo) error {
	for _, v := range []*decimal.Decimal{p.SmallBlind, p.BigBlind, p.Straddle, p.Ante} {
		if v != nil && v.IsNegative() {
			return errNegative("stakes")
		}
	}
	if p.TableSize != nil && *p.TableSize < 0 {
		return errNegative("table size")
	}
	if p.GameType != nil {
		g.GameType = strings.TrimSpace(*p.GameType)
	}
	if p.SmallBlind != nil {
		g.SmallBlind = *p.SmallBlind
	}
	if p.BigBlind != nil {
		g.BigBlind = *p.BigBlind
	}
	if p.Straddle != nil {
		g.Straddle = *p.Straddle
	}
	if p.Ante != nil {
		g.Ante = *p.Ante
	}
	if p.TableSize != nil {
		g.TableSize = *p.TableSize
	}
	return nil
}
