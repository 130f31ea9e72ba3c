package tmdb

type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeTV     MediaType = "tv"
	MediaTypeMulti  MediaType = "multi"
	MediaTypePerson MediaType = "person"
)

// MediaResponse is a paged list response.
type MediaResponse struct {
	Page         int     `json:"page"`
	Results      []Media `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Media holds the fields of both movies and TV series. Movie only fields
// (title, budget, ...) and series only fields (name, episodes, ...) are left
// zero for the other kind.
type Media struct {
	ID               int        `json:"id"`
	MediaType        MediaType  `json:"media_type,omitempty"`
	Adult            bool       `json:"adult"`
	Title            string     `json:"title,omitempty"`
	Name             string     `json:"name,omitempty"`
	OriginalTitle    string     `json:"original_title,omitempty"`
	OriginalLanguage string     `json:"original_language,omitempty"`
	Overview         string     `json:"overview"`
	Tagline          string     `json:"tagline,omitempty"`
	Homepage         string     `json:"homepage,omitempty"`
	Popularity       float64    `json:"popularity"`
	PosterPath       string     `json:"poster_path"`
	BackdropPath     string     `json:"backdrop_path"`
	VoteAverage      float64    `json:"vote_average"`
	VoteCount        int        `json:"vote_count"`
	ReleaseDate      string     `json:"release_date,omitempty"`
	FirstAirDate     string     `json:"first_air_date,omitempty"`
	LastAirDate      string     `json:"last_air_date,omitempty"`
	Runtime          int        `json:"runtime,omitempty"`
	Status           string     `json:"status,omitempty"`
	Budget           int64      `json:"budget,omitempty"`
	Revenue          int64      `json:"revenue,omitempty"`
	NumberOfEpisodes int        `json:"number_of_episodes,omitempty"`
	NumberOfSeasons  int        `json:"number_of_seasons,omitempty"`
	Genres           []Genre    `json:"genres,omitempty"`
	SpokenLanguages  []Language `json:"spoken_languages,omitempty"`
	Seasons          []Season   `json:"seasons,omitempty"`
	Credits          *Credits   `json:"credits,omitempty"`
	Videos           *Videos    `json:"videos,omitempty"`
	Keywords         *Keywords  `json:"keywords,omitempty"`
}

// DisplayTitle is the movie title, or the series name.
func (m Media) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}

	return m.Name
}

// Date is the release date, or the first air date.
func (m Media) Date() string {
	if m.ReleaseDate != "" {
		return m.ReleaseDate
	}

	return m.FirstAirDate
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Language struct {
	ISO639_1 string `json:"iso_639_1"`
	Name     string `json:"name"`
}

type Season struct {
	ID           int    `json:"id"`
	AirDate      string `json:"air_date,omitempty"`
	EpisodeCount int    `json:"episode_count,omitempty"`
	Name         string `json:"name,omitempty"`
	Overview     string `json:"overview,omitempty"`
	PosterPath   string `json:"poster_path,omitempty"`
	SeasonNumber int    `json:"season_number"`
}

type Credits struct {
	Cast []Cast `json:"cast"`
	Crew []Crew `json:"crew"`
}

type Cast struct {
	ID          int    `json:"id"`
	CastID      int    `json:"cast_id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profile_path,omitempty"`
}

type Crew struct {
	ID          int    `json:"id"`
	CreditID    string `json:"credit_id,omitempty"`
	Department  string `json:"department,omitempty"`
	Job         string `json:"job,omitempty"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path,omitempty"`
}

type Videos struct {
	Results []Video `json:"results"`
}

type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Size int    `json:"size"`
	Type string `json:"type"`
}

// Keywords comes back as "keywords" for movies and "results" for series.
type Keywords struct {
	Keywords []Keyword `json:"keywords,omitempty"`
	Results  []Keyword `json:"results,omitempty"`
}

func (k *Keywords) List() []Keyword {
	if k == nil {
		return nil
	}
	if k.Keywords != nil {
		return k.Keywords
	}

	return k.Results
}

type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
