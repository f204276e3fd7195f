package igdb

import (
	"context"
	"fmt"
	"strings"

	"gamelib/internal/catalog"
)

// Image size tokens substituted into upstream media URLs.
const (
	coverSize      = "t_cover_big"
	screenshotSize = "t_screenshot_big"
	artworkSize    = "t_1080p"
)

const youtubeWatchURL = "https://www.youtube.com/watch?v="

// GameProvider implements catalog.GameProvider against the IGDB games
// endpoint.
type GameProvider struct {
	client *Client
}

func NewGameProvider(client *Client) *GameProvider {
	return &GameProvider{client: client}
}

func (p *GameProvider) FindByID(ctx context.Context, id int64) (*catalog.Game, error) {
	query := NewQuery(gameFields).Where(fmt.Sprintf("id = %d", id))

	var records []gameRecord
	if err := p.client.Do(ctx, "games", query.String(), &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	game := mapGame(records[0])
	return &game, nil
}

func (p *GameProvider) FindByIDs(ctx context.Context, ids []int64) ([]catalog.Game, error) {
	if len(ids) == 0 {
		return []catalog.Game{}, nil
	}

	query := NewQuery(gameFields).Where("id = " + idList(ids))

	var records []gameRecord
	if err := p.client.Do(ctx, "games", query.String(), &records); err != nil {
		return nil, err
	}
	return mapGames(records), nil
}

func (p *GameProvider) SearchByName(ctx context.Context, name string) ([]catalog.Game, error) {
	query := NewQuery(gameFields).Search(name).Limit(searchLimit)

	var records []gameRecord
	if err := p.client.Do(ctx, "games", query.String(), &records); err != nil {
		return nil, err
	}
	return mapGames(records), nil
}

func (p *GameProvider) Filter(ctx context.Context, filter, sort string, limit, offset int) ([]catalog.Game, error) {
	query := NewQuery(gameFields).Page(limit, offset)
	if filter != "" {
		query.Where(filter)
	}
	if sort != "" {
		query.Sort(sort)
	}

	var records []gameRecord
	if err := p.client.Do(ctx, "games", query.String(), &records); err != nil {
		return nil, err
	}
	return mapGames(records), nil
}

func mapGames(records []gameRecord) []catalog.Game {
	games := make([]catalog.Game, len(records))
	for i, rec := range records {
		games[i] = mapGame(rec)
	}
	return games
}

func mapGame(rec gameRecord) catalog.Game {
	g := catalog.Game{
		ID:          rec.ID,
		Name:        rec.Name,
		Platforms:   []string{},
		Genres:      []string{},
		Videos:      []string{},
		Screenshots: []string{},
		Artworks:    []string{},
	}

	if rec.Summary != nil {
		g.Summary = *rec.Summary
	}
	if rec.Storyline != nil {
		g.Storyline = *rec.Storyline
	}
	if rec.FirstReleaseDate != nil {
		d := catalog.DateFromUnix(*rec.FirstReleaseDate)
		g.ReleaseDate = &d
	}
	if rec.Rating != nil {
		// Upstream rates 0-100, the domain scale is 0-10.
		rating := *rec.Rating / 10
		g.Rating = &rating
	}
	if rec.Cover != nil && rec.Cover.URL != nil {
		u := normalizeImageURL(*rec.Cover.URL, coverSize)
		g.CoverImageURL = &u
	}
	for _, pl := range rec.Platforms {
		g.Platforms = append(g.Platforms, pl.Name)
	}
	for _, ge := range rec.Genres {
		g.Genres = append(g.Genres, ge.Name)
	}
	for _, v := range rec.Videos {
		g.Videos = append(g.Videos, youtubeWatchURL+v.VideoID)
	}
	for _, s := range rec.Screenshots {
		if s.URL != nil {
			g.Screenshots = append(g.Screenshots, normalizeImageURL(*s.URL, screenshotSize))
		}
	}
	for _, a := range rec.Artworks {
		if a.URL != nil {
			g.Artworks = append(g.Artworks, normalizeImageURL(*a.URL, artworkSize))
		}
	}
	return g
}

// normalizeImageURL qualifies scheme-relative upstream URLs and swaps the
// thumbnail size token for the requested one.
func normalizeImageURL(url, size string) string {
	url = strings.Replace(url, "t_thumb", size, 1)
	if strings.HasPrefix(url, "//") {
		url = "https:" + url
	}
	return url
}
