package storage

import (
	"sort"

	"github.com/mcoot/mnkgame/internal/model"
)

// SortByCreated orders games oldest first, breaking ties by ID
func SortByCreated(games []*model.Game) {
	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
}
