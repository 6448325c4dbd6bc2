// source: query.sql

package db

import (
	"context"
)

const countGraph = `-- name: CountGraph :one
select
    (select count(*) from league) as leagues,
    (select count(*) from club) as clubs,
    (select count(*) from player) as players,
    (select count(*) from stat) as stats,
    (select count(*) from player_stat) as player_stats
`

type CountGraphRow struct {
	Leagues     int64
	Clubs       int64
	Players     int64
	Stats       int64
	PlayerStats int64
}

func (q *Queries) CountGraph(ctx context.Context) (CountGraphRow, error) {
	row := q.db.QueryRowContext(ctx, countGraph)
	var i CountGraphRow
	err := row.Scan(
		&i.Leagues,
		&i.Clubs,
		&i.Players,
		&i.Stats,
		&i.PlayerStats,
	)
	return i, err
}

const createPlayerStat = `-- name: CreatePlayerStat :one
insert into player_stat (player_id, stat_id, value) values (?, ?, ?) returning id, player_id, stat_id, value
`

type CreatePlayerStatParams struct {
	PlayerID int64
	StatID   int64
	Value    float64
}

func (q *Queries) CreatePlayerStat(ctx context.Context, arg CreatePlayerStatParams) (PlayerStat, error) {
	row := q.db.QueryRowContext(ctx, createPlayerStat, arg.PlayerID, arg.StatID, arg.Value)
	var i PlayerStat
	err := row.Scan(
		&i.ID,
		&i.PlayerID,
		&i.StatID,
		&i.Value,
	)
	return i, err
}

const createStat = `-- name: CreateStat :one
insert into stat (label) values (?) returning id, label
`

func (q *Queries) CreateStat(ctx context.Context, label string) (Stat, error) {
	row := q.db.QueryRowContext(ctx, createStat, label)
	var i Stat
	err := row.Scan(&i.ID, &i.Label)
	return i, err
}

const getClub = `-- name: GetClub :one
select id, name, league_id from club where id = ?
`

func (q *Queries) GetClub(ctx context.Context, id int64) (Club, error) {
	row := q.db.QueryRowContext(ctx, getClub, id)
	var i Club
	err := row.Scan(&i.ID, &i.Name, &i.LeagueID)
	return i, err
}

const getClubByName = `-- name: GetClubByName :one
select id, name, league_id from club where name = ?
`

func (q *Queries) GetClubByName(ctx context.Context, name string) (Club, error) {
	row := q.db.QueryRowContext(ctx, getClubByName, name)
	var i Club
	err := row.Scan(&i.ID, &i.Name, &i.LeagueID)
	return i, err
}

const getLeague = `-- name: GetLeague :one
select id, name, coefficient, nation from league where id = ?
`

func (q *Queries) GetLeague(ctx context.Context, id int64) (League, error) {
	row := q.db.QueryRowContext(ctx, getLeague, id)
	var i League
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Coefficient,
		&i.Nation,
	)
	return i, err
}

const getLeagueByCoefficient = `-- name: GetLeagueByCoefficient :one
select id, name, coefficient, nation from league where coefficient = ?
`

func (q *Queries) GetLeagueByCoefficient(ctx context.Context, coefficient int64) (League, error) {
	row := q.db.QueryRowContext(ctx, getLeagueByCoefficient, coefficient)
	var i League
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Coefficient,
		&i.Nation,
	)
	return i, err
}

const getPlayerByNameAndClub = `-- name: GetPlayerByNameAndClub :one
select id, name, age, position, market_value, club_id from player where name = ? and club_id = ?
`

type GetPlayerByNameAndClubParams struct {
	Name   string
	ClubID int64
}

func (q *Queries) GetPlayerByNameAndClub(ctx context.Context, arg GetPlayerByNameAndClubParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayerByNameAndClub, arg.Name, arg.ClubID)
	var i Player
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Age,
		&i.Position,
		&i.MarketValue,
		&i.ClubID,
	)
	return i, err
}

const getPlayerStat = `-- name: GetPlayerStat :one
select id, player_id, stat_id, value from player_stat where player_id = ? and stat_id = ?
`

type GetPlayerStatParams struct {
	PlayerID int64
	StatID   int64
}

func (q *Queries) GetPlayerStat(ctx context.Context, arg GetPlayerStatParams) (PlayerStat, error) {
	row := q.db.QueryRowContext(ctx, getPlayerStat, arg.PlayerID, arg.StatID)
	var i PlayerStat
	err := row.Scan(
		&i.ID,
		&i.PlayerID,
		&i.StatID,
		&i.Value,
	)
	return i, err
}

const getStatByLabel = `-- name: GetStatByLabel :one
select id, label from stat where label = ?
`

func (q *Queries) GetStatByLabel(ctx context.Context, label string) (Stat, error) {
	row := q.db.QueryRowContext(ctx, getStatByLabel, label)
	var i Stat
	err := row.Scan(&i.ID, &i.Label)
	return i, err
}

const listClubs = `-- name: ListClubs :many
select id, name, league_id from club order by id
`

func (q *Queries) ListClubs(ctx context.Context) ([]Club, error) {
	rows, err := q.db.QueryContext(ctx, listClubs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Club
	for rows.Next() {
		var i Club
		if err := rows.Scan(&i.ID, &i.Name, &i.LeagueID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listClubsByLeague = `-- name: ListClubsByLeague :many
select id, name, league_id from club where league_id = ? order by id
`

func (q *Queries) ListClubsByLeague(ctx context.Context, leagueID int64) ([]Club, error) {
	rows, err := q.db.QueryContext(ctx, listClubsByLeague, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Club
	for rows.Next() {
		var i Club
		if err := rows.Scan(&i.ID, &i.Name, &i.LeagueID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listLeagues = `-- name: ListLeagues :many
select id, name, coefficient, nation from league order by id
`

func (q *Queries) ListLeagues(ctx context.Context) ([]League, error) {
	rows, err := q.db.QueryContext(ctx, listLeagues)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []League
	for rows.Next() {
		var i League
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Coefficient,
			&i.Nation,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listPlayerStatsByPlayer = `-- name: ListPlayerStatsByPlayer :many
select player_stat.id, player_stat.player_id, player_stat.stat_id, player_stat.value, stat.label
from player_stat
inner join stat on stat.id = player_stat.stat_id
where player_stat.player_id = ?
order by player_stat.id
`

type ListPlayerStatsByPlayerRow struct {
	ID       int64
	PlayerID int64
	StatID   int64
	Value    float64
	Label    string
}

func (q *Queries) ListPlayerStatsByPlayer(ctx context.Context, playerID int64) ([]ListPlayerStatsByPlayerRow, error) {
	rows, err := q.db.QueryContext(ctx, listPlayerStatsByPlayer, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListPlayerStatsByPlayerRow
	for rows.Next() {
		var i ListPlayerStatsByPlayerRow
		if err := rows.Scan(
			&i.ID,
			&i.PlayerID,
			&i.StatID,
			&i.Value,
			&i.Label,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listPlayerStatsByStat = `-- name: ListPlayerStatsByStat :many
select player_stat.id, player_stat.player_id, player_stat.stat_id, player_stat.value, player.name as player_name
from player_stat
inner join player on player.id = player_stat.player_id
where player_stat.stat_id = ?
order by player_stat.value desc, player_stat.id
`

type ListPlayerStatsByStatRow struct {
	ID         int64
	PlayerID   int64
	StatID     int64
	Value      float64
	PlayerName string
}

func (q *Queries) ListPlayerStatsByStat(ctx context.Context, statID int64) ([]ListPlayerStatsByStatRow, error) {
	rows, err := q.db.QueryContext(ctx, listPlayerStatsByStat, statID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListPlayerStatsByStatRow
	for rows.Next() {
		var i ListPlayerStatsByStatRow
		if err := rows.Scan(
			&i.ID,
			&i.PlayerID,
			&i.StatID,
			&i.Value,
			&i.PlayerName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listPlayersByClub = `-- name: ListPlayersByClub :many
select id, name, age, position, market_value, club_id from player where club_id = ? order by id
`

func (q *Queries) ListPlayersByClub(ctx context.Context, clubID int64) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayersByClub, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Player
	for rows.Next() {
		var i Player
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Age,
			&i.Position,
			&i.MarketValue,
			&i.ClubID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listPlayersByPosition = `-- name: ListPlayersByPosition :many
select id, name, age, position, market_value, club_id from player where position = ? order by id
`

func (q *Queries) ListPlayersByPosition(ctx context.Context, position string) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayersByPosition, position)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Player
	for rows.Next() {
		var i Player
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Age,
			&i.Position,
			&i.MarketValue,
			&i.ClubID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listStats = `-- name: ListStats :many
select id, label from stat order by id
`

func (q *Queries) ListStats(ctx context.Context) ([]Stat, error) {
	rows, err := q.db.QueryContext(ctx, listStats)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Stat
	for rows.Next() {
		var i Stat
		if err := rows.Scan(&i.ID, &i.Label); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertClub = `-- name: UpsertClub :one
insert into club (name, league_id) values (?, ?)
on conflict (name) do update set
    league_id = excluded.league_id
returning id, name, league_id
`

type UpsertClubParams struct {
	Name     string
	LeagueID int64
}

func (q *Queries) UpsertClub(ctx context.Context, arg UpsertClubParams) (Club, error) {
	row := q.db.QueryRowContext(ctx, upsertClub, arg.Name, arg.LeagueID)
	var i Club
	err := row.Scan(&i.ID, &i.Name, &i.LeagueID)
	return i, err
}

const upsertLeague = `-- name: UpsertLeague :one
insert into league (name, coefficient, nation) values (?, ?, ?)
on conflict (coefficient) do update set
    name = excluded.name,
    nation = excluded.nation
returning id, name, coefficient, nation
`

type UpsertLeagueParams struct {
	Name        string
	Coefficient int64
	Nation      string
}

func (q *Queries) UpsertLeague(ctx context.Context, arg UpsertLeagueParams) (League, error) {
	row := q.db.QueryRowContext(ctx, upsertLeague, arg.Name, arg.Coefficient, arg.Nation)
	var i League
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Coefficient,
		&i.Nation,
	)
	return i, err
}

const upsertPlayer = `-- name: UpsertPlayer :one
insert into player (name, age, position, market_value, club_id) values (?, ?, ?, ?, ?)
on conflict (name, club_id) do update set
    age = excluded.age,
    position = excluded.position,
    market_value = excluded.market_value
returning id, name, age, position, market_value, club_id
`

type UpsertPlayerParams struct {
	Name        string
	Age         int64
	Position    string
	MarketValue float64
	ClubID      int64
}

func (q *Queries) UpsertPlayer(ctx context.Context, arg UpsertPlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, upsertPlayer,
		arg.Name,
		arg.Age,
		arg.Position,
		arg.MarketValue,
		arg.ClubID,
	)
	var i Player
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Age,
		&i.Position,
		&i.MarketValue,
		&i.ClubID,
	)
	return i, err
}
