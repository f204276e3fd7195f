package igdb

// Wire shapes returned by the upstream. Every field beyond id and name is
// optional on the wire.

type gameRecord struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Summary          *string          `json:"summary"`
	Storyline        *string          `json:"storyline"`
	FirstReleaseDate *int64           `json:"first_release_date"` // unix seconds
	Rating           *float64         `json:"rating"`             // 0-100
	Cover            *imageRecord     `json:"cover"`
	Platforms        []platformRecord `json:"platforms"`
	Genres           []genreRecord    `json:"genres"`
	Videos           []videoRecord    `json:"videos"`
	Screenshots      []imageRecord    `json:"screenshots"`
	Artworks         []imageRecord    `json:"artworks"`
}

type imageRecord struct {
	ID  int64   `json:"id"`
	URL *string `json:"url"`
}

type platformRecord struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Generation *int   `json:"generation"`
	Category   *int   `json:"category"`
}

type genreRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type videoRecord struct {
	ID      int64  `json:"id"`
	VideoID string `json:"video_id"` // YouTube video id
}
