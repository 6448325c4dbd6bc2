package db

type Club struct {
	ID       int64
	Name     string
	LeagueID int64
}

type League struct {
	ID          int64
	Name        string
	Coefficient int64
	Nation      string
}

type Player struct {
	ID          int64
	Name        string
	Age         int64
	Position    string
	MarketValue float64
	ClubID      int64
}

type PlayerStat struct {
	ID       int64
	PlayerID int64
	StatID   int64
	Value    float64
}

type Stat struct {
	ID    int64
	Label string
}
