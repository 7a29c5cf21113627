package pdf

import "gamestore/gamebot/internal/domain/pricelist"

type Generator interface {
	Generate(p pricelist.PriceList) ([]byte, error)
}
