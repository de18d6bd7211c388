// Package strapi implements the domain repository interfaces against the
// remote REST backend. Wire DTOs mirror the backend schema and are mapped
// into domain entities at the boundary; nothing is cached.
package strapi

import (
	"strings"
	"time"

	api "padelbot/api/strapi"
	"padelbot/domain/club"
	"padelbot/domain/paging"
	"padelbot/domain/pairing"
	"padelbot/domain/player"
	"padelbot/domain/ranking"
	"padelbot/domain/tournament"
)

type mediaDTO struct {
	URL string `json:"url"`
}

type categoriaDTO struct {
	DocumentID string `json:"documentId"`
	Nombre     string `json:"nombre"`
}

type clubDTO struct {
	DocumentID string         `json:"documentId"`
	Nombre     string         `json:"nombre"`
	Logo       *mediaDTO      `json:"logo"`
	Categorias []categoriaDTO `json:"categorias"`
}

func (d *clubDTO) toDomain() *club.Club {
	c := &club.Club{
		ID:   d.DocumentID,
		Name: d.Nombre,
	}
	if d.Logo != nil {
		c.LogoURL = d.Logo.URL
	}
	for _, cat := range d.Categorias {
		c.Categories = append(c.Categories, club.Category{ID: cat.DocumentID, Name: cat.Nombre})
	}
	return c
}

type estadisticasDTO struct {
	PartidosJugados int `json:"partidosJugados"`
	PartidosGanados int `json:"partidosGanados"`
	TorneosJugados  int `json:"torneosJugados"`
	TorneosGanados  int `json:"torneosGanados"`
}

type jugadorRefDTO struct {
	DocumentID string `json:"documentId"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
}

func (d *jugadorRefDTO) fullName() string {
	if d == nil {
		return ""
	}
	return strings.TrimSpace(d.Nombre + " " + d.Apellido)
}

type parejaDTO struct {
	DocumentID string         `json:"documentId"`
	Drive      *jugadorRefDTO `json:"drive"`
	Reves      *jugadorRefDTO `json:"reves"`
}

func (d *parejaDTO) toDomain() *pairing.Pairing {
	p := &pairing.Pairing{ID: d.DocumentID}
	if d.Drive != nil {
		p.DriveID = d.Drive.DocumentID
		p.DriveName = d.Drive.fullName()
	}
	if d.Reves != nil {
		p.BackID = d.Reves.DocumentID
		p.BackName = d.Reves.fullName()
	}
	return p
}

// label renders "surname / surname" for pair display.
func (d *parejaDTO) label() string {
	name := func(j *jugadorRefDTO) string {
		if j == nil {
			return "?"
		}
		if j.Apellido != "" {
			return j.Apellido
		}
		return j.Nombre
	}
	return name(d.Drive) + " / " + name(d.Reves)
}

func (d *parejaDTO) toPairRef() tournament.PairRef {
	return tournament.PairRef{ID: d.DocumentID, Label: d.label()}
}

type torneoRefDTO struct {
	DocumentID string `json:"documentId"`
	Nombre     string `json:"nombre"`
}

type jugadorDTO struct {
	DocumentID   string           `json:"documentId"`
	Nombre       string           `json:"nombre"`
	Apellido     string           `json:"apellido"`
	Genero       string           `json:"genero"`
	Ranking      int              `json:"ranking"`
	Club         *clubDTO         `json:"club"`
	Categoria    *categoriaDTO    `json:"categoria"`
	Estadisticas *estadisticasDTO `json:"estadisticas"`
	ParejaDrive  *parejaDTO       `json:"parejaDrive"`
	ParejaReves  *parejaDTO       `json:"parejaReves"`
	Torneos      []torneoRefDTO   `json:"torneos"`
}

func (d *jugadorDTO) toDomain() *player.Player {
	p := &player.Player{
		ID:      d.DocumentID,
		Name:    d.Nombre,
		Surname: d.Apellido,
		Gender:  d.Genero,
		Score:   d.Ranking,
	}
	if d.Club != nil {
		p.Club = d.Club.Nombre
	}
	if d.Categoria != nil {
		p.Category = d.Categoria.Nombre
	}
	if d.Estadisticas != nil {
		p.Stats = player.Stats{
			MatchesPlayed:     d.Estadisticas.PartidosJugados,
			MatchesWon:        d.Estadisticas.PartidosGanados,
			TournamentsPlayed: d.Estadisticas.TorneosJugados,
			TournamentsWon:    d.Estadisticas.TorneosGanados,
		}
	}
	// parejaDrive is the pairing where this player plays drive; the
	// partner is the revés player, and vice versa.
	if d.ParejaDrive != nil {
		p.Drive = &player.PairingSlot{
			PairingID:   d.ParejaDrive.DocumentID,
			PartnerID:   refID(d.ParejaDrive.Reves),
			PartnerName: d.ParejaDrive.Reves.fullName(),
		}
	}
	if d.ParejaReves != nil {
		p.Back = &player.PairingSlot{
			PairingID:   d.ParejaReves.DocumentID,
			PartnerID:   refID(d.ParejaReves.Drive),
			PartnerName: d.ParejaReves.Drive.fullName(),
		}
	}
	for _, t := range d.Torneos {
		p.Enrollments = append(p.Enrollments, player.Enrollment{
			TournamentID:   t.DocumentID,
			TournamentName: t.Nombre,
		})
	}
	return p
}

func refID(j *jugadorRefDTO) string {
	if j == nil {
		return ""
	}
	return j.DocumentID
}

type setDTO struct {
	GamesPareja1 int `json:"gamesPareja1"`
	GamesPareja2 int `json:"gamesPareja2"`
}

type partidoDTO struct {
	DocumentID string     `json:"documentId"`
	Ronda      string     `json:"ronda"`
	Cancha     string     `json:"cancha"`
	Fecha      string     `json:"fecha"`
	Estado     string     `json:"estado"`
	Pareja1    *parejaDTO `json:"pareja1"`
	Pareja2    *parejaDTO `json:"pareja2"`
	Sets       []setDTO   `json:"sets"`
	Ganador    *parejaDTO `json:"ganador"`
}

type torneoDTO struct {
	DocumentID  string       `json:"documentId"`
	Nombre      string       `json:"nombre"`
	Estado      string       `json:"estado"`
	FechaInicio string       `json:"fechaInicio"`
	FechaFin    string       `json:"fechaFin"`
	Club        *clubDTO     `json:"club"`
	Parejas     []parejaDTO  `json:"parejas"`
	Partidos    []partidoDTO `json:"partidos"`
}

func (d *torneoDTO) toDomain() *tournament.Tournament {
	t := &tournament.Tournament{
		ID:        d.DocumentID,
		Name:      d.Nombre,
		Status:    tournament.Status(d.Estado),
		StartDate: parseDate(d.FechaInicio),
		EndDate:   parseDate(d.FechaFin),
	}
	if d.Club != nil {
		t.Club = d.Club.Nombre
	}
	for i := range d.Parejas {
		t.Pairs = append(t.Pairs, d.Parejas[i].toPairRef())
	}
	for i := range d.Partidos {
		t.Matches = append(t.Matches, d.Partidos[i].toDomain())
	}
	return t
}

func (d *partidoDTO) toDomain() tournament.Match {
	m := tournament.Match{
		ID:     d.DocumentID,
		Round:  d.Ronda,
		Court:  d.Cancha,
		Date:   parseDate(d.Fecha),
		Status: d.Estado,
	}
	if d.Pareja1 != nil {
		m.PairA = d.Pareja1.toPairRef()
	}
	if d.Pareja2 != nil {
		m.PairB = d.Pareja2.toPairRef()
	}
	for _, s := range d.Sets {
		m.Sets = append(m.Sets, tournament.SetResult{GamesA: s.GamesPareja1, GamesB: s.GamesPareja2})
	}
	if d.Ganador != nil {
		m.WinnerID = d.Ganador.DocumentID
	}
	return m
}

type entradaDTO struct {
	DocumentID string      `json:"documentId"`
	Puntos     int         `json:"puntos"`
	Posicion   int         `json:"posicion"`
	Jugador    *jugadorDTO `json:"jugador"`
}

func (d *entradaDTO) toDomain() ranking.Entry {
	e := ranking.Entry{
		Score:    d.Puntos,
		Position: d.Posicion,
	}
	if d.Jugador != nil {
		e.PlayerID = d.Jugador.DocumentID
		e.PlayerName = strings.TrimSpace(d.Jugador.Nombre + " " + d.Jugador.Apellido)
		if d.Jugador.Club != nil {
			e.ClubName = d.Jugador.Club.Nombre
			if d.Jugador.Club.Logo != nil {
				e.ClubLogoURL = d.Jugador.Club.Logo.URL
			}
		}
	}
	return e
}

func entriesToDomain(dtos []entradaDTO) []ranking.Entry {
	out := make([]ranking.Entry, 0, len(dtos))
	for i := range dtos {
		out = append(out, dtos[i].toDomain())
	}
	return out
}

// parseDate accepts the backend's two date encodings: plain dates for
// tournament ranges, RFC3339 for match schedules.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// pageInfo converts envelope metadata, falling back to a single page when
// the backend sends none.
func pageInfo(meta *api.Meta, fallbackPage, count int) paging.Info {
	if meta == nil || meta.Pagination == nil {
		return paging.Info{Page: fallbackPage, PageSize: count, PageCount: 1, Total: count}
	}
	p := meta.Pagination
	return paging.Info{Page: p.Page, PageSize: p.PageSize, PageCount: p.PageCount, Total: p.Total}
}
